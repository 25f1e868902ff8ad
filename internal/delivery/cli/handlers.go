package cli

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"employee-tracker/internal/delivery/cli/choices"
	"employee-tracker/internal/delivery/cli/flows"
	"employee-tracker/internal/delivery/cli/middleware"
	"employee-tracker/internal/delivery/cli/prompt"
	"employee-tracker/internal/delivery/cli/router"
)

const menuPrompt = "What would you like to do?"

type Handler struct {
	flows.Env
	Log *zap.Logger

	router *router.Router
}

func (h *Handler) Register() {
	if h.Log == nil {
		h.Log = zap.NewNop()
	}
	h.router = router.New()
	h.router.Use(middleware.Recover(h.Log))
	flows.Register(h.router, h.Env)
}

// Run shows the main menu until the operator picks Exit or aborts the menu
// prompt. Action failures are logged and the menu is shown again.
func (h *Handler) Run(ctx context.Context) error {
	if h.router == nil {
		h.Register()
	}
	menu := choices.FromLabels(append(h.router.Labels(), flows.Exit))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := h.Prompt.Select(menuPrompt, menu)
		if err != nil {
			if errors.Is(err, prompt.ErrAborted) {
				h.Log.Debug("main menu aborted, exiting")
				return nil
			}
			return fmt.Errorf("main menu: %w", err)
		}
		if choice.Label == flows.Exit {
			return nil
		}

		handled, err := h.router.Dispatch(ctx, choice.Label)
		if err != nil {
			return err
		}
		if !handled {
			h.Log.Warn("no handler for menu entry", zap.String("action", choice.Label))
		}
	}
}
