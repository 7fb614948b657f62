package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/braingasm/cmds"
	"github.com/reusee/braingasm/configs"
	"github.com/reusee/braingasm/logs"
	"github.com/reusee/braingasm/nets"
)

var ErrNotFound = errors.New("program not found")

// Source is program text and the name used in diagnostics.
type Source struct {
	Name string
	Code string
}

// Stdin is read for the location "-".
type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

var pathFlag = cmds.Collect[string]("-path", "directory searched for relative program paths")

// SearchPaths are tried in order after the working directory.
type SearchPaths []string

func (Module) SearchPaths(
	loader configs.Loader,
	logger logs.Logger,
) (ret SearchPaths) {
	ret = append(ret, *pathFlag...)
	for paths, err := range configs.All[[]string](loader, "search_path") {
		if err != nil {
			logger.Warn("bad search_path config", "error", err)
			break
		}
		ret = append(ret, paths...)
	}
	return
}

// Load reads a program from a file, "-" for stdin, or an http(s) URL.
type Load func(ctx context.Context, location string) (*Source, error)

func (Module) Load(
	stdin Stdin,
	client nets.HTTPClient,
	searchPaths SearchPaths,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, location string) (*Source, error) {
		switch {

		case location == "-":
			code, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			return &Source{
				Name: "<stdin>",
				Code: string(code),
			}, nil

		case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
			logger.DebugContext(ctx, "fetch program", "url", location)
			return fetch(ctx, client, location)

		}

		path, err := resolve(location, searchPaths)
		if err != nil {
			return nil, err
		}
		code, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return &Source{
			Name: path,
			Code: string(code),
		}, nil
	}
}

func resolve(location string, searchPaths SearchPaths) (string, error) {
	if _, err := os.Stat(location); err == nil || filepath.IsAbs(location) {
		return location, nil
	}
	for _, dir := range searchPaths {
		path := filepath.Join(dir, location)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, location)
}

func fetch(ctx context.Context, client nets.HTTPClient, url string) (*Source, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	code, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	return &Source{
		Name: url,
		Code: string(code),
	}, nil
}
