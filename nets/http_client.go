package nets

import (
	"net/http"
	"time"

	"github.com/reusee/braingasm/configs"
)

type HTTPClient = *http.Client

const defaultHTTPTimeout = time.Minute

func (Module) HTTPClient(
	dialer Dialer,
	loader configs.Loader,
) HTTPClient {
	timeout := defaultHTTPTimeout
	if str := configs.First[string](loader, "http_timeout"); str != "" {
		if d, err := time.ParseDuration(str); err == nil && d > 0 {
			timeout = d
		}
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: dialer.DialContext,
		},
	}
}
