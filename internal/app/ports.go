package app

import (
	"context"

	"github.com/alexanderramin/triad/internal/domain"
	"github.com/alexanderramin/triad/internal/realism"
)

// SimulatorUseCase is one triangle session bound to a location.
type SimulatorUseCase interface {
	Init(ctx context.Context) bool
	Adjust(ctx context.Context, f domain.Factor, value float64) (*Evaluation, error)
	Snapshot(ctx context.Context) *Evaluation
	Share(ctx context.Context) ShareResult
	SetLocalizer(loc realism.Localizer)
}

type PreferencesUseCase interface {
	Get(ctx context.Context) (*domain.Preferences, error)
	Save(ctx context.Context, p *domain.Preferences) error
}
