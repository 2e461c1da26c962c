package testhelper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/camara-backend/internal/domain"
)

// seedYear keeps seeded session numbers away from the current year so
// number assignment tests are not disturbed.
const seedYear = 1900

var seedSeq atomic.Int64

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedSession creates a CLOSED session so that any number of seeded sessions
// can coexist with the single-open-session index.
func SeedSession(t *testing.T, pool *pgxpool.Pool) domain.Session {
	t.Helper()
	return SeedSessionWithStatus(t, pool, domain.SessionStatusClosed)
}

// SeedSessionWithStatus creates a session in the given status. Callers that
// seed a non-CLOSED session must not run in parallel with each other.
func SeedSessionWithStatus(t *testing.T, pool *pgxpool.Pool, status domain.SessionStatus) domain.Session {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	num := domain.SessionNumber{Seq: int(seedSeq.Add(1)), Year: seedYear}
	s := domain.Session{
		ID:          uuid.New(),
		Number:      num,
		Title:       domain.DefaultSessionTitle(num),
		ScheduledAt: now,
		Status:      status,
		Quorum:      domain.DefaultQuorum,
		CreatedBy:   uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO sessions (id, number_seq, number_year, title, scheduled_at, status, quorum, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.Number.Seq, s.Number.Year, s.Title, s.ScheduledAt, string(s.Status), s.Quorum, s.CreatedBy, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert: %v", err)
	}

	return s
}

// SeedDocument creates a document in sessionID that is not on the agenda.
func SeedDocument(t *testing.T, pool *pgxpool.Pool, sessionID uuid.UUID) domain.Document {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	d := domain.Document{
		ID:        uuid.New(),
		SessionID: sessionID,
		Title:     "Projeto de Lei " + uniqueSuffix(),
		Type:      "PROJETO_DE_LEI",
		Phase:     "PRIMEIRA_DISCUSSAO",
		Approval:  domain.ApprovalUndecided,
		CreatedBy: uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO documents (id, session_id, title, type, phase, approval, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		d.ID, d.SessionID, d.Title, d.Type, d.Phase, string(d.Approval), d.CreatedBy, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDocument insert: %v", err)
	}

	return d
}

// SeedMatter creates a DRAFT matter.
func SeedMatter(t *testing.T, pool *pgxpool.Pool) domain.Matter {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	m := domain.Matter{
		ID:        uuid.New(),
		Title:     "Matéria " + uniqueSuffix(),
		Type:      "REQUERIMENTO",
		Status:    domain.MatterStatusDraft,
		CreatedBy: uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO matters (id, title, type, status, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.Title, m.Type, string(m.Status), m.CreatedBy, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMatter insert: %v", err)
	}

	return m
}

// SeedSpeechRequest creates a CONSIDERACOES_FINAIS request owned by a new
// user id with the given approval and order index.
func SeedSpeechRequest(t *testing.T, pool *pgxpool.Pool, sessionID uuid.UUID, approved bool, orderIndex int) domain.SpeechRequest {
	t.Helper()
	ctx := context.Background()

	userID := uuid.New()
	r := domain.SpeechRequest{
		ID:         uuid.New(),
		SessionID:  sessionID,
		UserID:     &userID,
		Type:       domain.SpeechTypeConsideracoesFinais,
		Subject:    "Assunto " + uniqueSuffix(),
		IsApproved: approved,
		OrderIndex: orderIndex,
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO speech_requests (id, session_id, user_id, type, subject, is_approved, order_index, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		r.ID, r.SessionID, r.UserID, string(r.Type), r.Subject, r.IsApproved, r.OrderIndex, r.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSpeechRequest insert: %v", err)
	}

	return r
}

// SeedPresence registers voterID as present in sessionID.
func SeedPresence(t *testing.T, pool *pgxpool.Pool, sessionID, voterID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO attendance (session_id, voter_id, is_present, arrived_at) VALUES ($1, $2, true, now())`,
		sessionID, voterID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPresence insert: %v", err)
	}
}

// ResetControl clears every pointer of the council control record.
func ResetControl(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE council_control
		 SET reading_document_id = NULL, speaking_request_id = NULL,
		     voting_document_id = NULL, voting_matter_id = NULL
		 WHERE id = 1`,
	)
	if err != nil {
		t.Fatalf("testhelper: ResetControl: %v", err)
	}
}
