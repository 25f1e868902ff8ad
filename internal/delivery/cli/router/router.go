package router

import (
	"context"
)

type HandlerFunc func(ctx context.Context) error

// Middleware wraps the handler registered under label.
type Middleware func(label string, next HandlerFunc) HandlerFunc

// Router maps menu labels to handlers and remembers the order they were
// registered in, which is the order the menu shows them.
type Router struct {
	labels     []string
	handlers   map[string]HandlerFunc
	middleware []Middleware
}

func New() *Router {
	return &Router{handlers: make(map[string]HandlerFunc)}
}

// Use adds middleware applied to every handler at dispatch time.
func (r *Router) Use(mw ...Middleware) {
	r.middleware = append(r.middleware, mw...)
}

// Register adds or replaces the handler for label. Replacing keeps the
// original menu position.
func (r *Router) Register(label string, h HandlerFunc) {
	if _, ok := r.handlers[label]; !ok {
		r.labels = append(r.labels, label)
	}
	r.handlers[label] = h
}

func (r *Router) Labels() []string {
	return append([]string(nil), r.labels...)
}

// Dispatch runs the handler for label. It reports false when nothing is
// registered under label.
func (r *Router) Dispatch(ctx context.Context, label string) (bool, error) {
	h, ok := r.handlers[label]
	if !ok {
		return false, nil
	}
	for i := len(r.middleware) - 1; i >= 0; i-- {
		h = r.middleware[i](label, h)
	}
	return true, h(ctx)
}
