package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const (
	PathDashboard   = "/dashboard"
	PathMarketplace = "/marketplace"
	PathChecklist   = "/checklist"
)

// Invalidation tells UI layers which rendered paths are stale for a business.
type Invalidation struct {
	Paths      []string
	BusinessID int64
	Reason     string
}

type Publisher interface {
	Publish(ctx context.Context, msg Invalidation) error
	Close() error
}

type redisPublisher struct {
	client *redis.Client
	stream string
	maxLen int64
}

// NewRedisPublisher appends invalidations to a Redis stream capped at roughly maxLen entries.
func NewRedisPublisher(client *redis.Client, stream string, maxLen int64) Publisher {
	return &redisPublisher{
		client: client,
		stream: stream,
		maxLen: maxLen,
	}
}

func (p *redisPublisher) Publish(ctx context.Context, msg Invalidation) error {
	args := &redis.XAddArgs{
		Stream: p.stream,
		Values: invalidationFields(ctx, msg),
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}

	if err := p.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("publish invalidation: %w", err)
	}

	slog.DebugContext(ctx, "published invalidation",
		"stream", p.stream,
		"business_id", msg.BusinessID,
		"paths", msg.Paths,
		"reason", msg.Reason,
	)
	return nil
}

func (p *redisPublisher) Close() error {
	return p.client.Close()
}

type logPublisher struct{}

// NewLogPublisher is used when Redis is not configured; invalidations are only logged.
func NewLogPublisher() Publisher {
	return logPublisher{}
}

func (logPublisher) Publish(ctx context.Context, msg Invalidation) error {
	slog.InfoContext(ctx, "invalidation",
		"business_id", msg.BusinessID,
		"paths", msg.Paths,
		"reason", msg.Reason,
	)
	return nil
}

func (logPublisher) Close() error { return nil }

func invalidationFields(ctx context.Context, msg Invalidation) map[string]any {
	fields := map[string]any{
		"business_id": msg.BusinessID,
		"paths":       strings.Join(msg.Paths, ","),
		"reason":      msg.Reason,
		"emitted_at":  time.Now().UTC().Format(time.RFC3339Nano),
	}
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		fields["trace_id"] = sc.TraceID().String()
	}
	return fields
}
