package impl

import (
	"context"
	"log/slog"

	domainerrors "apparel/internal/domain/errors"
	"apparel/internal/domain/repository"

	"github.com/pkg/errors"
)

// maxIdentifierAttempts bounds how often a write is retried after its
// allocated identifier collided with an existing row.
const maxIdentifierAttempts = 3

// executeWithIdentifierRetry runs fn in a transaction and re-runs it in a fresh
// transaction when an insert lost an identifier race.
func executeWithIdentifierRetry(
	ctx context.Context,
	txManager repository.TransactionManager,
	logger *slog.Logger,
	fn func(txRepoFactory repository.RepositoryFactory) error,
) error {
	for attempt := 1; attempt <= maxIdentifierAttempts; attempt++ {
		err := txManager.Execute(ctx, fn)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrDuplicateIdentifier) {
			return err
		}

		logger.Warn("Identifier collision, retrying", slog.Int("attempt", attempt))
	}

	return errors.Wrapf(domainerrors.ErrIdentifierExhausted, "gave up after %d attempts", maxIdentifierAttempts)
}
