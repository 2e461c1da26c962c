// Package redis publishes audit records to a Redis stream so that external
// consumers can follow council activity without polling the database.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/camara-backend/internal/domain"
)

// AuditStream implements an audit sink backed by XADD.
type AuditStream struct {
	client *backend.Client
	stream string
	maxLen int64
}

type Option func(*AuditStream)

// WithStream sets the stream key.
func WithStream(stream string) Option {
	return func(s *AuditStream) {
		s.stream = stream
	}
}

// WithMaxLen caps the stream length (approximate trimming). Zero disables
// trimming.
func WithMaxLen(n int64) Option {
	return func(s *AuditStream) {
		s.maxLen = n
	}
}

// New connects to Redis and returns an audit stream sink.
func New(address, password string, db int, opts ...Option) *AuditStream {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates an audit stream sink from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *AuditStream {
	s := &AuditStream{
		client: client,
		stream: "council:audit",
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name identifies this sink in logs and metrics.
func (s *AuditStream) Name() string { return "redis" }

// Write appends rec to the stream.
func (s *AuditStream) Write(ctx context.Context, rec domain.AuditRecord) error {
	details, err := json.Marshal(rec.Details)
	if err != nil {
		return fmt.Errorf("marshal audit details: %w", err)
	}

	values := map[string]any{
		"id":         rec.ID.String(),
		"action":     string(rec.Action),
		"details":    string(details),
		"created_at": rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if rec.ActorID != nil {
		values["actor_id"] = rec.ActorID.String()
	}
	if rec.IPAddress != nil {
		values["ip_address"] = *rec.IPAddress
	}
	if rec.UserAgent != nil {
		values["user_agent"] = *rec.UserAgent
	}

	args := &backend.XAddArgs{
		Stream: s.stream,
		Values: values,
	}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}

	if err := s.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("xadd %s: %w", s.stream, err)
	}
	return nil
}

// Ping checks connectivity. It backs the readiness check.
func (s *AuditStream) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (s *AuditStream) Close() error {
	return s.client.Close()
}
