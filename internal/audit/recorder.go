// Package audit fans fire-and-forget audit events out to every configured
// sink. A failing sink is logged and counted; it never fails the caller.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/pkg/ctxutil"
)

// sinkTimeout bounds a single sink write.
const sinkTimeout = 2 * time.Second

// Sink stores audit records.
type Sink interface {
	Name() string
	Write(ctx context.Context, rec domain.AuditRecord) error
}

type counter interface {
	AuditEvent(action domain.AuditAction)
	AuditSinkFailed(sink string)
}

// Recorder builds audit records from the request context and writes them to
// every sink.
type Recorder struct {
	sinks   []Sink
	metrics counter
	log     *slog.Logger
	now     func() time.Time
}

// NewRecorder creates a Recorder. metrics may be nil.
func NewRecorder(log *slog.Logger, metrics counter, sinks ...Sink) *Recorder {
	return &Recorder{
		sinks:   sinks,
		metrics: metrics,
		log:     log.With("component", "audit"),
		now:     time.Now,
	}
}

// Record writes one event. The actor and client details are taken from ctx.
// Writes outlive the cancellation of ctx.
func (r *Recorder) Record(ctx context.Context, action domain.AuditAction, details map[string]any) {
	rec := domain.AuditRecord{
		ID:        uuid.New(),
		Action:    action,
		Details:   details,
		CreatedAt: r.now().UTC(),
	}
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		rec.ActorID = &id
	}
	client := ctxutil.ClientInfoFromCtx(ctx)
	if client.IP != "" {
		rec.IPAddress = &client.IP
	}
	if client.UserAgent != "" {
		rec.UserAgent = &client.UserAgent
	}

	if r.metrics != nil {
		r.metrics.AuditEvent(action)
	}

	base := context.WithoutCancel(ctx)
	for _, sink := range r.sinks {
		writeCtx, cancel := context.WithTimeout(base, sinkTimeout)
		err := sink.Write(writeCtx, rec)
		cancel()

		if err != nil {
			r.log.WarnContext(ctx, "audit sink write failed",
				slog.String("sink", sink.Name()),
				slog.String("action", string(action)),
				slog.String("error", err.Error()),
			)
			if r.metrics != nil {
				r.metrics.AuditSinkFailed(sink.Name())
			}
		}
	}
}
