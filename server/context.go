package server

import (
	"context"
)

type activeContext struct {
	context.Context
	context.CancelFunc
}

func newActiveContext(ctx context.Context, cancel context.CancelFunc) *activeContext {
	return &activeContext{
		Context:    ctx,
		CancelFunc: cancel,
	}
}

// cancelOperation cancels the request registered under key.
func (h *Handler) cancelOperation(key string) bool {
	active, ok := h.activeContexts.Take(key)
	if ok {
		active.CancelFunc()
	}
	return ok
}

// finishOperation releases active; a later request reusing key keeps its own context.
func (h *Handler) finishOperation(key string, active *activeContext) {
	active.CancelFunc()
	h.activeContexts.DeleteIf(key, func(value *activeContext) bool {
		return value == active
	})
}
