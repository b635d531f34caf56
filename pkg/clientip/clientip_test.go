package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/registro/pkg/clientip"
)

func request(remote string, headers map[string]string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = remote
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	return r
}

func TestResolverIP(t *testing.T) {
	t.Parallel()

	proxied := clientip.New(clientip.ProxyHeaders...)
	direct := clientip.New()

	cases := []struct {
		name    string
		res     clientip.Resolver
		remote  string
		headers map[string]string
		want    string
	}{
		{"remote addr with port", direct, "192.0.2.10:5555", nil, "192.0.2.10"},
		{"ipv6 remote addr", direct, "[2001:db8::1]:443", nil, "2001:db8::1"},
		{"remote addr without port", direct, "192.0.2.11", nil, "192.0.2.11"},
		{"mapped ipv4", direct, "[::ffff:192.0.2.12]:80", nil, "192.0.2.12"},
		{"garbage remote", direct, "nope", nil, ""},
		{"untrusted header ignored", direct, "192.0.2.10:1", map[string]string{"X-Forwarded-For": "203.0.113.5"}, "192.0.2.10"},
		{"forwarded first valid", proxied, "10.0.0.1:1", map[string]string{"X-Forwarded-For": "bogus, 203.0.113.5, 10.0.0.2"}, "203.0.113.5"},
		{"cloudflare wins", proxied, "10.0.0.1:1", map[string]string{"CF-Connecting-IP": "198.51.100.7", "X-Forwarded-For": "203.0.113.5"}, "198.51.100.7"},
		{"real ip", proxied, "10.0.0.1:1", map[string]string{"X-Real-IP": "198.51.100.8"}, "198.51.100.8"},
		{"invalid headers fall back", proxied, "10.0.0.1:1", map[string]string{"X-Real-IP": "x"}, "10.0.0.1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.res.IP(request(tc.remote, tc.headers)))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	res := clientip.New()
	var seen, key string
	h := res.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = clientip.FromContext(r.Context())
		key = res.Key(r)
	}))
	h.ServeHTTP(httptest.NewRecorder(), request("192.0.2.1:9", nil))

	assert.Equal(t, "192.0.2.1", seen)
	assert.Equal(t, "192.0.2.1", key)
	assert.Empty(t, clientip.FromContext(context.Background()))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	attr, ok := clientip.LoggerExtractor()(clientip.WithContext(context.Background(), "192.0.2.1"))
	assert.True(t, ok)
	assert.Equal(t, "192.0.2.1", attr.Value.String())

	_, ok = clientip.LoggerExtractor()(context.Background())
	assert.False(t, ok)
}
