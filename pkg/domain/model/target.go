package model

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Target is a resolved delivery destination
type Target struct {
	Scheme   string
	Host     string
	Port     int
	Path     string
	RawQuery string
}

// ParseTarget parses a delivery URL. Port falls back to 80 or 443 by scheme
// and an empty path becomes "/".
func ParseTarget(raw string) (*Target, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse target URL",
			goerr.V("url", raw),
			goerr.T(ErrTagInvalidTarget))
	}

	var defaultPort int
	switch u.Scheme {
	case "http":
		defaultPort = 80
	case "https":
		defaultPort = 443
	default:
		return nil, goerr.New("unsupported target URL scheme",
			goerr.V("url", raw),
			goerr.V("scheme", u.Scheme),
			goerr.T(ErrTagInvalidTarget))
	}

	if u.Hostname() == "" {
		return nil, goerr.New("target URL has no host",
			goerr.V("url", raw),
			goerr.T(ErrTagInvalidTarget))
	}

	port := defaultPort
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil || port < 1 || port > 65535 {
			return nil, goerr.New("invalid target URL port",
				goerr.V("url", raw),
				goerr.V("port", p),
				goerr.T(ErrTagInvalidTarget))
		}
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}

	return &Target{
		Scheme:   u.Scheme,
		Host:     u.Hostname(),
		Port:     port,
		Path:     path,
		RawQuery: u.RawQuery,
	}, nil
}

// IsTLS reports whether the target is reached over HTTPS
func (t *Target) IsTLS() bool {
	return t.Scheme == "https"
}

func (t *Target) defaultPort() int {
	if t.IsTLS() {
		return 443
	}
	return 80
}

// URL returns the request URL. The port is omitted when it is the scheme
// default so the Host header stays bare.
func (t *Target) URL() string {
	host := t.Host
	if t.Port != t.defaultPort() {
		host = net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
	} else if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}

	u := url.URL{
		Scheme:   t.Scheme,
		Host:     host,
		Path:     t.Path,
		RawPath:  t.Path,
		RawQuery: t.RawQuery,
	}
	if p, err := url.PathUnescape(t.Path); err == nil {
		u.Path = p
	}
	return u.String()
}
