package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JSONStore is the key/value port used to park selections made before the
// client had a session.
type JSONStore interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type PendingSelection struct {
	ID        uuid.UUID `json:"id"`
	Categoria string    `json:"categoria"`
	CreatedAt time.Time `json:"created_at"`
}

const pendingSelectionPrefix = "selection:pending:"

func PendingSelectionKey(id uuid.UUID) string {
	return pendingSelectionPrefix + strings.ToLower(id.String())
}
