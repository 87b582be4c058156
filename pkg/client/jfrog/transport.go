package jfrog

import (
	"net/http"
	"net/url"

	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/net/http/httpproxy"
)

// ProxyConfig selects the outbound proxy for registry requests.
// Empty fields disable proxying for that scheme.
type ProxyConfig struct {
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// Enabled reports whether any proxy endpoint is configured.
func (p ProxyConfig) Enabled() bool {
	return p.HTTPProxy != "" || p.HTTPSProxy != ""
}

// NewHTTPClient builds an HTTP client whose transport routes requests through
// the configured proxy. HTTPS requests are tunnelled through the proxy with CONNECT.
// The proxy selection is resolved once, when the client is built.
//
// A proxy configured for only one scheme is used for both, so a lone
// HTTP_PROXY still tunnels HTTPS registry traffic.
func NewHTTPClient(proxy ProxyConfig) *http.Client {
	transport := cleanhttp.DefaultTransport()
	transport.Proxy = proxyFunc(proxy)

	return &http.Client{Transport: transport}
}

func proxyFunc(proxy ProxyConfig) func(*http.Request) (*url.URL, error) {
	if !proxy.Enabled() {
		return nil
	}

	config := &httpproxy.Config{
		HTTPProxy:  firstNonEmpty(proxy.HTTPProxy, proxy.HTTPSProxy),
		HTTPSProxy: firstNonEmpty(proxy.HTTPSProxy, proxy.HTTPProxy),
		NoProxy:    proxy.NoProxy,
	}
	resolve := config.ProxyFunc()

	return func(req *http.Request) (*url.URL, error) {
		return resolve(req.URL)
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
