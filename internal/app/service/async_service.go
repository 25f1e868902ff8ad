package service

import (
	"context"

	"employee-tracker/pkg/workerpool"
)

type AsyncService struct {
	Pool *workerpool.WorkerPool
}

func NewAsyncService(pool *workerpool.WorkerPool) *AsyncService {
	return &AsyncService{Pool: pool}
}

// Gather runs fns on the pool and waits for all of them. Values come back in
// the order of fns; the first error in that order wins. Without a pool the
// calls run one after another on the caller's goroutine.
func (a *AsyncService) Gather(ctx context.Context, fns ...func(context.Context) (any, error)) ([]any, error) {
	values := make([]any, len(fns))
	if a == nil || a.Pool == nil {
		for i, fn := range fns {
			v, err := fn(ctx)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return values, nil
	}

	pending := make([]chan workerpool.Result, len(fns))
	for i, fn := range fns {
		fn := fn
		resCh := make(chan workerpool.Result, 1)
		pending[i] = resCh
		err := a.Pool.Submit(workerpool.Task{
			Fn:      func() (any, error) { return fn(ctx) },
			ResultC: resCh,
		})
		if err != nil {
			return nil, err
		}
	}

	var firstErr error
	for i, resCh := range pending {
		select {
		case res := <-resCh:
			if res.Err != nil && firstErr == nil {
				firstErr = res.Err
			}
			values[i] = res.Value
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return values, nil
}
