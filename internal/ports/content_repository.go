package ports

import (
	"context"

	"github.com/bnema/ledgerline/internal/domain"
)

type ContentRepository interface {
	Load(ctx context.Context) (domain.Content, error)
}
