package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/trace"

	"github.com/Forhemit/StarterClub-sub002/core/config"
)

// Setup installs the process-wide default logger.
func Setup(cfg config.Config) {
	slog.SetDefault(slog.New(NewHandler(cfg, os.Stdout)))
}

// NewHandler exports through OTel in production when a collector is
// configured, writes JSON in production otherwise and text everywhere else.
// LOG_LEVEL overrides the environment's default level on every path.
func NewHandler(cfg config.Config, w io.Writer) slog.Handler {
	fallback := slog.LevelInfo
	if cfg.IsDevelopment() {
		fallback = slog.LevelDebug
	}
	level := ParseLevel(cfg.LogLevel, fallback)
	opts := &slog.HandlerOptions{Level: level}

	switch {
	case cfg.IsProduction() && cfg.OTel.Enabled():
		// otelslog attaches trace and span ids from the record context itself.
		return &TraceHandler{
			Handler: otelslog.NewHandler(
				cfg.OTel.ServiceName,
				otelslog.WithLoggerProvider(global.GetLoggerProvider()),
			),
			level:        level,
			skipTraceIDs: true,
		}
	case cfg.IsProduction():
		return NewTraceHandler(slog.NewJSONHandler(w, opts))
	default:
		return NewTraceHandler(slog.NewTextHandler(w, opts))
	}
}

// ParseLevel accepts slog level names ("debug", "WARN", "info+2"). Empty or
// unknown input yields fallback.
func ParseLevel(s string, fallback slog.Level) slog.Level {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return fallback
	}
	return level
}

// TraceHandler adds trace ids and the context LogFields to every record.
type TraceHandler struct {
	slog.Handler
	level        slog.Leveler
	skipTraceIDs bool
}

func NewTraceHandler(h slog.Handler) *TraceHandler {
	return &TraceHandler{Handler: h}
}

func (h *TraceHandler) Enabled(ctx context.Context, l slog.Level) bool {
	if h.level != nil && l < h.level.Level() {
		return false
	}
	return h.Handler.Enabled(ctx, l)
}

func (h *TraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if span := trace.SpanFromContext(ctx); !h.skipTraceIDs && span.SpanContext().IsValid() {
		sc := span.SpanContext()
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}

	fields := GetLogFields(ctx)
	if fields.UserID != nil {
		r.AddAttrs(slog.Int64("user_id", *fields.UserID))
	}
	if fields.BusinessID != nil {
		r.AddAttrs(slog.Int64("business_id", *fields.BusinessID))
	}
	if fields.ModuleID != nil {
		r.AddAttrs(slog.String("module_id", fields.ModuleID.String()))
	}
	if fields.WebhookSource != nil {
		r.AddAttrs(slog.String("webhook_source", *fields.WebhookSource))
	}
	if fields.EventType != nil {
		r.AddAttrs(slog.String("event_type", *fields.EventType))
	}
	if fields.Component != "" {
		r.AddAttrs(slog.String("component", fields.Component))
	}

	return h.Handler.Handle(ctx, r)
}

func (h *TraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TraceHandler{Handler: h.Handler.WithAttrs(attrs), level: h.level, skipTraceIDs: h.skipTraceIDs}
}

func (h *TraceHandler) WithGroup(name string) slog.Handler {
	return &TraceHandler{Handler: h.Handler.WithGroup(name), level: h.level, skipTraceIDs: h.skipTraceIDs}
}
