package service

import (
	"context"

	"github.com/alexanderramin/triad/internal/app"
	"github.com/alexanderramin/triad/internal/domain"
)

type SimulatorService interface {
	app.SimulatorUseCase
	// Resume seeds the session from a query it wrote earlier, see
	// urlstate.DecodeCarried.
	Resume(ctx context.Context) bool
	SessionID() string
	State() domain.TriangleState
}

type PreferencesService interface {
	app.PreferencesUseCase
	// Update applies the non-empty values and saves the result.
	Update(ctx context.Context, language, theme string) (*domain.Preferences, error)
	Reset(ctx context.Context) error
}
