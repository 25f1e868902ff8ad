package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelsKeepRegistrationOrder(t *testing.T) {
	r := New()
	r.Register("b", func(context.Context) error { return nil })
	r.Register("a", func(context.Context) error { return nil })
	r.Register("b", func(context.Context) error { return errors.New("replaced") })

	assert.Equal(t, []string{"b", "a"}, r.Labels())

	handled, err := r.Dispatch(context.Background(), "b")
	assert.True(t, handled)
	assert.EqualError(t, err, "replaced")
}

func TestDispatchUnknown(t *testing.T) {
	handled, err := New().Dispatch(context.Background(), "nope")
	assert.False(t, handled)
	assert.NoError(t, err)
}

func TestMiddlewareOrder(t *testing.T) {
	var trace []string
	mw := func(name string) Middleware {
		return func(label string, next HandlerFunc) HandlerFunc {
			return func(ctx context.Context) error {
				trace = append(trace, name+":"+label)
				return next(ctx)
			}
		}
	}

	r := New()
	r.Use(mw("outer"), mw("inner"))
	r.Register("x", func(context.Context) error {
		trace = append(trace, "handler")
		return nil
	})

	handled, err := r.Dispatch(context.Background(), "x")
	require.True(t, handled)
	require.NoError(t, err)
	assert.Equal(t, []string{"outer:x", "inner:x", "handler"}, trace)
}
