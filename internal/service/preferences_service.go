package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/triad/internal/db"
	"github.com/alexanderramin/triad/internal/domain"
	"github.com/alexanderramin/triad/internal/repository"
)

type preferencesService struct {
	repo     repository.PreferencesRepo
	uow      db.UnitOfWork
	defaults domain.Preferences
	observer UseCaseObserver
}

// NewPreferencesService fills anything not stored from defaults, typically
// the detected system language and the system theme.
func NewPreferencesService(
	repo repository.PreferencesRepo,
	uow db.UnitOfWork,
	defaults domain.Preferences,
	observers ...UseCaseObserver,
) PreferencesService {
	return &preferencesService{
		repo:     repo,
		uow:      uow,
		defaults: defaults.Sanitize(),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *preferencesService) Get(ctx context.Context) (*domain.Preferences, error) {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading preferences: %w", err)
	}
	p := stored.WithDefaults(s.defaults)
	return &p, nil
}

func (s *preferencesService) Save(ctx context.Context, p *domain.Preferences) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields := map[string]any{"language": string(p.Language), "theme": string(p.Theme)}
		s.observer.ObserveUseCase(ctx, finishedEvent("save-preferences", startedAt, err, fields))
	}()

	if _, err = domain.ParseLanguage(string(p.Language)); err != nil {
		return err
	}
	if _, err = domain.ParseTheme(string(p.Theme)); err != nil {
		return err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePreferencesRepo(tx).Save(ctx, p)
	})
	if err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return nil
}

func (s *preferencesService) Update(ctx context.Context, language, theme string) (*domain.Preferences, error) {
	p, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if language != "" {
		if p.Language, err = domain.ParseLanguage(language); err != nil {
			return nil, err
		}
	}
	if theme != "" {
		if p.Theme, err = domain.ParseTheme(theme); err != nil {
			return nil, err
		}
	}
	if err := s.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *preferencesService) Reset(ctx context.Context) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePreferencesRepo(tx).Reset(ctx)
	})
}
