//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/camara-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/camara-backend/internal/app"
	authpkg "github.com/heartmarshall/camara-backend/internal/auth"
	"github.com/heartmarshall/camara-backend/internal/config"
	"github.com/heartmarshall/camara-backend/internal/domain"
)

const (
	jwtSecret = "test-secret-at-least-32-chars-long!!"
	jwtIssuer = "test-issuer"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper) on a clean council state.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	resetCouncil(t, pool)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      jwtSecret,
			JWTIssuer:      jwtIssuer,
			AccessTokenTTL: 15 * time.Minute,
		},
		Council: config.CouncilConfig{
			DefaultQuorum:        domain.DefaultQuorum,
			TransitionPolicy:     "permissive",
			MaxSpeechMinutes:     30,
			MaxTimerSeconds:      3600,
			SessionListPageLimit: 100,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RateLimit: config.RateLimitConfig{
			PublicPerMinute:    10000,
			CouncilorPerMinute: 10000,
			CleanupInterval:    time.Minute,
		},
	}

	handler, cleanup, err := app.NewHandler(logger, cfg, pool, nil)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    authpkg.NewJWTManager(jwtSecret, jwtIssuer, 15*time.Minute),
	}
}

// resetCouncil empties every council table and clears the control row so
// each test starts with no open session.
func resetCouncil(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// votes rejects row deletes, so leaf tables are truncated. Tables that
	// council_control references are deleted so its row survives.
	_, err := pool.Exec(ctx, "TRUNCATE audit_log, votes, attendance, session_matters")
	require.NoError(t, err)

	for _, table := range []string{"speech_requests", "matters", "documents", "sessions"} {
		_, err := pool.Exec(ctx, "DELETE FROM "+table)
		require.NoError(t, err, table)
	}

	_, err = pool.Exec(ctx, `
		UPDATE council_control
		   SET reading_document_id = NULL, speaking_request_id = NULL,
		       voting_document_id = NULL, voting_matter_id = NULL`)
	require.NoError(t, err)
}

// member is an authenticated council member.
type member struct {
	ID    uuid.UUID
	Token string
}

func (ts *testServer) member(t *testing.T, role domain.Role) member {
	t.Helper()
	id := uuid.New()
	tok, err := ts.jwt.GenerateAccessToken(id, role)
	require.NoError(t, err)
	return member{ID: id, Token: tok}
}

// do sends a JSON request and decodes the response into out when it is
// non-nil. It returns the status code.
func (ts *testServer) do(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// errorBody reads the error message of a failed request.
func (ts *testServer) errorBody(t *testing.T, method, path, token string, body any) (int, string) {
	t.Helper()

	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req, err := http.NewRequest(method, ts.URL+path, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out.Error
}

// Response shapes used by the scenarios.

type sessionJSON struct {
	ID                   uuid.UUID `json:"id"`
	Number               string    `json:"number"`
	Title                string    `json:"title"`
	Status               string    `json:"status"`
	Quorum               int       `json:"quorum"`
	IsAttendanceOpen     bool      `json:"isAttendanceOpen"`
	IsSpeechRequestsOpen bool      `json:"isSpeechRequestsOpen"`
	ClosedAt             *string   `json:"closedAt"`
}

type documentJSON struct {
	ID           uuid.UUID `json:"id"`
	IsOrdemDoDia bool      `json:"isOrdemDoDia"`
	Approval     string    `json:"approval"`
	IsBeingRead  bool      `json:"isBeingRead"`
	IsVoting     bool      `json:"isVoting"`
}

type tallyJSON struct {
	Yes        int `json:"yes"`
	No         int `json:"no"`
	Abstention int `json:"abstention"`
	Total      int `json:"total"`
}

type resultJSON struct {
	Tally    tallyJSON `json:"tally"`
	Approved bool      `json:"approved"`
}

type speechJSON struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	IsApproved bool      `json:"isApproved"`
	IsSpeaking bool      `json:"isSpeaking"`
	HasSpoken  bool      `json:"hasSpoken"`
	TimeLimit  int       `json:"timeLimit"`
}

type snapshotJSON struct {
	Session    *sessionJSON  `json:"session"`
	ReadingDoc *documentJSON `json:"readingDocument"`
	ActiveVote *struct {
		ItemID   uuid.UUID `json:"itemId"`
		Tally    tallyJSON `json:"tally"`
		Eligible int       `json:"eligible"`
	} `json:"activeVote"`
	ActiveSpeaker *struct {
		Request          speechJSON `json:"request"`
		RemainingSeconds int        `json:"remainingSeconds"`
	} `json:"activeSpeaker"`
	Quorum struct {
		PresentCount int  `json:"presentCount"`
		Required     int  `json:"required"`
		HasQuorum    bool `json:"hasQuorum"`
	} `json:"quorum"`
	SpeechQueue struct {
		IsOpen              bool         `json:"isOpen"`
		ConsideracoesFinais []speechJSON `json:"consideracoesFinais"`
		TribunaLive         []speechJSON `json:"tribunaLive"`
	} `json:"speechQueue"`
}
