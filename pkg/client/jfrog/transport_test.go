package jfrog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/devantler-tech/jnl/pkg/client/jfrog"
	"github.com/devantler-tech/jnl/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProxyConfig_Enabled(t *testing.T) {
	t.Parallel()

	assert.False(t, jfrog.ProxyConfig{}.Enabled())
	assert.False(t, jfrog.ProxyConfig{NoProxy: "example.com"}.Enabled())
	assert.True(t, jfrog.ProxyConfig{HTTPProxy: "http://proxy:3128"}.Enabled())
	assert.True(t, jfrog.ProxyConfig{HTTPSProxy: "http://proxy:3128"}.Enabled())
}

func TestNewHTTPClient_WithoutProxy(t *testing.T) {
	t.Parallel()

	client := jfrog.NewHTTPClient(jfrog.ProxyConfig{})

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Nil(t, transport.Proxy)
}

func TestNewHTTPClient_RoutesThroughProxy(t *testing.T) {
	t.Parallel()

	seen := make(chan *http.Request, 1)

	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- r.Clone(context.Background())

		_, _ = w.Write([]byte("_authToken=via-proxy\n"))
	}))
	t.Cleanup(proxy.Close)

	// Only HTTPS_PROXY is set; it must also serve plain http requests.
	client := jfrog.NewClient(
		jfrog.WithScheme("http"),
		jfrog.WithHTTPClient(jfrog.NewHTTPClient(jfrog.ProxyConfig{HTTPSProxy: proxy.URL})),
	)

	entries, err := client.Fetch(context.Background(), registry.Key("//registry.invalid/npm/"), "T")

	require.NoError(t, err)
	assert.Equal(t, []registry.Entry{{Name: "_authToken", Value: "via-proxy"}}, entries)

	req := <-seen
	assert.Equal(t, "registry.invalid", req.Host)
	assert.Equal(t, "/npm/auth/jfrog", req.URL.Path)
	assert.Equal(t, "T", req.Header.Get(jfrog.APIKeyHeader))
}

func TestNewHTTPClient_NoProxyBypassesProxy(t *testing.T) {
	t.Parallel()

	client := jfrog.NewHTTPClient(jfrog.ProxyConfig{
		HTTPProxy: "http://proxy.invalid:3128",
		NoProxy:   "registry.example.com",
	})

	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	require.NotNil(t, transport.Proxy)

	bypassed, err := http.NewRequest(http.MethodGet, "https://registry.example.com/npm/", nil)
	require.NoError(t, err)

	proxyURL, err := transport.Proxy(bypassed)
	require.NoError(t, err)
	assert.Nil(t, proxyURL)

	proxied, err := http.NewRequest(http.MethodGet, "https://other.example.com/npm/", nil)
	require.NoError(t, err)

	proxyURL, err = transport.Proxy(proxied)
	require.NoError(t, err)
	require.NotNil(t, proxyURL)
	assert.Equal(t, "proxy.invalid:3128", proxyURL.Host)
}
