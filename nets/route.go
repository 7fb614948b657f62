package nets

import (
	"context"
	"net"
	"strings"

	"github.com/reusee/braingasm/logs"
)

// Route says how a program host is reached.
type Route uint8

const (
	RouteDirect Route = iota + 1
	RouteProxy
)

func (r Route) String() string {
	if r == RouteProxy {
		return "proxy"
	}
	return "direct"
}

// RouteFor picks the route for a dial address like "host:port".
type RouteFor func(addr string) Route

func (Module) RouteFor(
	getProxyURL GetProxyURL,
) RouteFor {
	return func(addr string) Route {
		u, err := getProxyURL()
		if err == nil && u == nil {
			return RouteDirect
		}
		// a bad proxy setting is reported by the proxy dialer
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		if isLocalHost(host) {
			return RouteDirect
		}
		return RouteProxy
	}
}

// isLocalHost never resolves names, so nothing about proxied hosts leaks to the local resolver.
func isLocalHost(host string) bool {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}
	ip := net.ParseIP(strings.Trim(host, "[]"))
	if ip == nil {
		return false
	}
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast()
}

type Dialer interface {
	Dial(network, addr string) (net.Conn, error)
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

func (Module) Dialer(
	routeFor RouteFor,
	getProxyDialer GetProxyDialer,
	logger logs.Logger,
) Dialer {
	var direct net.Dialer
	return DialerFunc(func(ctx context.Context, network, addr string) (net.Conn, error) {
		route := routeFor(addr)
		logger.DebugContext(ctx, "dial", "addr", addr, "route", route)
		if route == RouteDirect {
			return direct.DialContext(ctx, network, addr)
		}
		proxyDialer, err := getProxyDialer()
		if err != nil {
			return nil, err
		}
		return proxyDialer.DialContext(ctx, network, addr)
	})
}

type DialerFunc func(ctx context.Context, network, addr string) (net.Conn, error)

var _ Dialer = DialerFunc(nil)

func (d DialerFunc) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	return d(ctx, network, addr)
}

func (d DialerFunc) Dial(network, addr string) (net.Conn, error) {
	return d(context.Background(), network, addr)
}
