package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	SelectedTypeCategoria = "categoria"

	DefaultRequestFlowPath  = "/solicitudes/nueva"
	DefaultAuthRedirectPath = "/auth"
	DefaultPendingTTL       = 15 * time.Minute

	AuthRequiredNotice = "Inicia sesión para continuar con tu solicitud."
)

type NavigationState struct {
	SelectedType string `json:"selectedType"`
	Categoria    string `json:"categoria"`
}

// Navigation tells the client where to go next and what state to carry.
type Navigation struct {
	Route string
	State NavigationState
}

// AuthRequiredError is returned when a selection is made without a session.
// The client shows Notice, sends the user to RedirectTo and, once signed in,
// resumes the selection with IntentID. IntentID is uuid.Nil when the
// selection could not be parked.
type AuthRequiredError struct {
	Notice     string
	RedirectTo string
	IntentID   uuid.UUID
}

func (e *AuthRequiredError) Error() string {
	return "authentication required"
}

type SelectInput struct {
	UserID    *uuid.UUID
	Categoria string
}

type SelectionUsecase interface {
	Select(ctx context.Context, in SelectInput) (Navigation, error)
	Resume(ctx context.Context, userID uuid.UUID, intentID uuid.UUID) (Navigation, error)
}

type SelectionConfig struct {
	RequestFlowPath  string
	AuthRedirectPath string
	PendingTTL       time.Duration
}

type Selection struct {
	catalogs CatalogProvider
	pending  JSONStore
	cfg      SelectionConfig
	logger   zerolog.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

func NewSelectionUsecase(catalogs CatalogProvider, pending JSONStore, cfg SelectionConfig, logger zerolog.Logger) *Selection {
	if strings.TrimSpace(cfg.RequestFlowPath) == "" {
		cfg.RequestFlowPath = DefaultRequestFlowPath
	}
	if strings.TrimSpace(cfg.AuthRedirectPath) == "" {
		cfg.AuthRedirectPath = DefaultAuthRedirectPath
	}
	if cfg.PendingTTL <= 0 {
		cfg.PendingTTL = DefaultPendingTTL
	}
	return &Selection{
		catalogs: catalogs,
		pending:  pending,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.New,
	}
}

func (u *Selection) Select(ctx context.Context, in SelectInput) (Navigation, error) {
	name, err := u.resolve(in.Categoria)
	if err != nil {
		return Navigation{}, err
	}

	if in.UserID != nil && *in.UserID != uuid.Nil {
		return u.navigation(name), nil
	}

	authErr := &AuthRequiredError{Notice: AuthRequiredNotice, RedirectTo: u.cfg.AuthRedirectPath}
	if !u.canPark() {
		return Navigation{}, authErr
	}

	p := PendingSelection{ID: u.newID(), Categoria: name, CreatedAt: u.now().UTC()}
	if err := u.pending.SetJSON(ctx, PendingSelectionKey(p.ID), p, u.cfg.PendingTTL); err != nil {
		u.logger.Warn().Err(err).Str("categoria", name).Msg("could not park pending selection")
		return Navigation{}, authErr
	}

	authErr.IntentID = p.ID
	return Navigation{}, authErr
}

func (u *Selection) Resume(ctx context.Context, userID uuid.UUID, intentID uuid.UUID) (Navigation, error) {
	if userID == uuid.Nil || intentID == uuid.Nil {
		return Navigation{}, ErrInvalidInput
	}
	if u.pending == nil {
		return Navigation{}, ErrSelectionNotFound
	}

	key := PendingSelectionKey(intentID)
	var p PendingSelection
	found, err := u.pending.GetJSON(ctx, key, &p)
	if err != nil {
		return Navigation{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if !found {
		return Navigation{}, ErrSelectionNotFound
	}
	if err := u.pending.Delete(ctx, key); err != nil {
		u.logger.Warn().Err(err).Str("key", key).Msg("could not delete pending selection")
	}

	// The catalog may have changed since the selection was parked.
	name, err := u.resolve(p.Categoria)
	if err != nil {
		return Navigation{}, err
	}

	u.logger.Info().
		Str("user_id", userID.String()).
		Str("intent_id", intentID.String()).
		Str("categoria", name).
		Msg("pending selection resumed")

	return u.navigation(name), nil
}

func (u *Selection) canPark() bool {
	if u.pending == nil {
		return false
	}
	if a, ok := u.pending.(interface{ Available() bool }); ok {
		return a.Available()
	}
	return true
}

func (u *Selection) resolve(categoria string) (string, error) {
	categoria = strings.TrimSpace(categoria)
	if categoria == "" {
		return "", ErrInvalidInput
	}
	if u.catalogs == nil || u.catalogs.Current() == nil {
		return "", ErrCatalogUnavailable
	}
	cat, ok := u.catalogs.Current().LookupName(categoria)
	if !ok {
		return "", ErrUnknownCategory
	}
	return cat.Name, nil
}

func (u *Selection) navigation(categoria string) Navigation {
	return Navigation{
		Route: u.cfg.RequestFlowPath,
		State: NavigationState{SelectedType: SelectedTypeCategoria, Categoria: categoria},
	}
}
