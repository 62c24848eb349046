package interfaces

import (
	"context"

	"cfp_agreements/internal/domain/entities"
)

// IDraftRepository persists drafts keyed by their token.
//
// Implementations must:
//   - upsert whole drafts, keeping the original CreatedAt on overwrite
//   - return a zero-value Draft (empty Token) when the token is unknown
type IDraftRepository interface {
	Upsert(ctx context.Context, d entities.Draft) (entities.Draft, error)
	GetByToken(ctx context.Context, token string) (entities.Draft, error)
}
