package clientip

import (
	"context"
	"log/slog"
	"net/http"
	"net/netip"
	"strings"
)

// ProxyHeaders are consulted, in order, when the service runs behind a proxy.
var ProxyHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For", "X-Real-IP"}

// Resolver extracts the client address from a request. Headers are only
// trusted when listed; otherwise RemoteAddr is used.
type Resolver struct {
	headers []string
}

// New returns a resolver trusting headers in the given order.
// With no headers only RemoteAddr is used.
func New(headers ...string) Resolver {
	return Resolver{headers: headers}
}

// IP returns the normalized client address or "" when none is valid.
func (res Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		// X-Forwarded-For lists the client first.
		for part := range strings.SplitSeq(value, ",") {
			if ip := parse(part); ip != "" {
				return ip
			}
		}
	}

	if ap, err := netip.ParseAddrPort(r.RemoteAddr); err == nil {
		return ap.Addr().Unmap().String()
	}
	return parse(r.RemoteAddr)
}

// Middleware stores the resolved address in the request context.
func (res Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res.IP(r))))
	})
}

// Key returns the client address for use as a rate limit key.
func (res Resolver) Key(r *http.Request) string {
	if ip := FromContext(r.Context()); ip != "" {
		return ip
	}
	return res.IP(r)
}

type contextKey struct{}

// WithContext stores ip in ctx.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the address stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// LoggerExtractor adds client_ip to log records whose context carries one.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}

func parse(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}
