package session

import (
	"context"
	"errors"

	"github.com/AreebaxIrfan/translation-buddy/pkg/services/translate"
	"github.com/AreebaxIrfan/translation-buddy/pkg/settings"
)

// Diagnostics sent into the chat when a start-up check fails. Wording is
// part of the bot's contract, keep them verbatim.
const (
	MsgMissingDeps     = "Error: Missing dependencies. No usable translation provider is configured."
	MsgBadEnvironment  = "Error: Failed to load environment variables."
	MsgTranslatorsInit = "Error: Could not initialize translators."
)

// Check is one pre-flight verification step.
type Check struct {
	Name string
	Diag string
	Run  func(ctx context.Context) error
}

// Preflight returns the start-up checks in their fixed order: dependencies,
// environment, connectivity.
func Preflight(prober translate.Prober) []Check {
	return []Check{
		{
			Name: "dependencies",
			Diag: MsgMissingDeps,
			Run: func(ctx context.Context) error {
				return translate.CheckProvider()
			},
		},
		{
			Name: "environment",
			Diag: MsgBadEnvironment,
			Run: func(ctx context.Context) error {
				return settings.Check()
			},
		},
		{
			Name: "connectivity",
			Diag: translate.MsgNoConnection,
			Run: func(ctx context.Context) error {
				if !prober.Online(ctx) {
					return errors.New("connectivity probe failed")
				}
				return nil
			},
		},
	}
}
