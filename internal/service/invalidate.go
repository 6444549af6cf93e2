package service

import (
	"context"
	"log/slog"

	"github.com/Forhemit/StarterClub-sub002/common/metrics"
	"github.com/Forhemit/StarterClub-sub002/internal/queue"
)

// invalidate tells UI layers to re-render paths for a business. Failures are
// logged only; the write that triggered it has already committed.
func invalidate(ctx context.Context, publisher queue.Publisher, businessID int64, reason string, paths ...string) {
	if publisher == nil {
		return
	}
	err := publisher.Publish(ctx, queue.Invalidation{
		Paths:      paths,
		BusinessID: businessID,
		Reason:     reason,
	})
	metrics.RecordInvalidation(err)
	if err != nil {
		slog.WarnContext(ctx, "failed to publish invalidation",
			"error", err,
			"business_id", businessID,
			"reason", reason,
		)
	}
}
