package httpapi

import (
	"context"
	"sync"
)

// Alert is a message the screen showed while handling a request.
type Alert struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// output collects what the controller showed during one request.
type output struct {
	mu       sync.Mutex
	alerts   []Alert
	redirect string
}

type outputKey struct{}

func withOutput(ctx context.Context) (context.Context, *output) {
	out := &output{}
	return context.WithValue(ctx, outputKey{}, out), out
}

func outputFrom(ctx context.Context) *output {
	out, _ := ctx.Value(outputKey{}).(*output)
	return out
}

func (o *output) snapshot() ([]Alert, string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	alerts := make([]Alert, len(o.alerts))
	copy(alerts, o.alerts)
	return alerts, o.redirect
}

// presenter records alerts into the request output. The HTTP client
// dismisses them by reading the response, so Show never blocks.
type presenter struct{}

func (presenter) Show(ctx context.Context, title, message string) error {
	out := outputFrom(ctx)
	if out == nil {
		return ErrNoScreenOutput
	}
	out.mu.Lock()
	out.alerts = append(out.alerts, Alert{Title: title, Message: message})
	out.mu.Unlock()
	return nil
}

// navigator records the route the client should open next.
type navigator struct{}

func (navigator) GoTo(ctx context.Context, route string) error {
	out := outputFrom(ctx)
	if out == nil {
		return ErrNoScreenOutput
	}
	out.mu.Lock()
	out.redirect = route
	out.mu.Unlock()
	return nil
}
