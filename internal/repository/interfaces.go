package repository

import (
	"context"

	"github.com/alexanderramin/triad/internal/domain"
)

type PreferencesRepo interface {
	Get(ctx context.Context) (*domain.Preferences, error)
	Save(ctx context.Context, p *domain.Preferences) error
	Reset(ctx context.Context) error
}
