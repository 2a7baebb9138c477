package blambda_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/advdv/blambda"
	"github.com/stretchr/testify/require"
)

func TestChainWithoutMiddleware(t *testing.T) {
	hdlr := blambda.HandlerFunc(func(context.Context, blambda.Event) (blambda.Response, error) {
		return nil, nil
	})

	require.Equal(t, fmt.Sprint(hdlr), fmt.Sprint(blambda.Chain(hdlr))) // compare addrs
}

func TestChainOrder(t *testing.T) {
	var res string

	hdlr := blambda.HandlerFunc(func(context.Context, blambda.Event) (blambda.Response, error) {
		res += "inner"
		return blambda.Response{"body": "done"}, nil
	})

	annotate := func(s string) blambda.Middleware {
		return func(next blambda.Handler) blambda.Handler {
			return blambda.HandlerFunc(func(ctx context.Context, evt blambda.Event) (blambda.Response, error) {
				res += s + "("
				resp, err := next.HandleEvent(ctx, evt)
				res += ")" + s

				return resp, err
			})
		}
	}

	resp, err := blambda.Chain(hdlr, annotate("1"), annotate("2"), annotate("3")).
		HandleEvent(context.Background(), blambda.Event{})
	require.NoError(t, err)
	require.Equal(t, blambda.Response{"body": "done"}, resp)
	require.Equal(t, "1(2(3(inner)3)2)1", res)
}

func TestChainPassesEventThrough(t *testing.T) {
	evt := blambda.Event{"boo": "ya"}

	var seen blambda.Event
	hdlr := blambda.HandlerFunc(func(_ context.Context, e blambda.Event) (blambda.Response, error) {
		seen = e
		return nil, nil
	})

	noop := func(next blambda.Handler) blambda.Handler { return next }

	_, err := blambda.Chain(hdlr, noop, noop).HandleEvent(context.Background(), evt)
	require.NoError(t, err)
	require.Equal(t, evt, seen)
}
