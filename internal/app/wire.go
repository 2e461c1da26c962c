package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/camara-backend/internal/adapter/postgres"
	attendancerepo "github.com/heartmarshall/camara-backend/internal/adapter/postgres/attendance"
	auditrepo "github.com/heartmarshall/camara-backend/internal/adapter/postgres/audit"
	controlrepo "github.com/heartmarshall/camara-backend/internal/adapter/postgres/control"
	documentrepo "github.com/heartmarshall/camara-backend/internal/adapter/postgres/document"
	matterrepo "github.com/heartmarshall/camara-backend/internal/adapter/postgres/matter"
	sessionrepo "github.com/heartmarshall/camara-backend/internal/adapter/postgres/session"
	speechrepo "github.com/heartmarshall/camara-backend/internal/adapter/postgres/speech"
	voterepo "github.com/heartmarshall/camara-backend/internal/adapter/postgres/vote"
	"github.com/heartmarshall/camara-backend/internal/adapter/redis"
	"github.com/heartmarshall/camara-backend/internal/audit"
	"github.com/heartmarshall/camara-backend/internal/auth"
	"github.com/heartmarshall/camara-backend/internal/config"
	"github.com/heartmarshall/camara-backend/internal/metrics"
	"github.com/heartmarshall/camara-backend/internal/service/agenda"
	"github.com/heartmarshall/camara-backend/internal/service/attendance"
	"github.com/heartmarshall/camara-backend/internal/service/display"
	"github.com/heartmarshall/camara-backend/internal/service/session"
	"github.com/heartmarshall/camara-backend/internal/service/speech"
	"github.com/heartmarshall/camara-backend/internal/service/voting"
	"github.com/heartmarshall/camara-backend/internal/transport/middleware"
	"github.com/heartmarshall/camara-backend/internal/transport/rest"
)

// NewHandler wires repositories, services and the REST router over pool.
// stream is optional. The returned cleanup stops background workers.
func NewHandler(logger *slog.Logger, cfg *config.Config, pool *pgxpool.Pool, stream *redis.AuditStream) (http.Handler, func(), error) {
	deps, err := newDependencies(logger, cfg, pool, stream, metrics.New())
	if err != nil {
		return nil, nil, err
	}
	return deps.router(cfg), deps.close, nil
}

// dependencies holds every wired component of the running server.
type dependencies struct {
	log     *slog.Logger
	pool    *pgxpool.Pool
	stream  *redis.AuditStream
	metrics *metrics.Metrics
	tokens  *auth.JWTManager
	limiter *middleware.RateLimiter

	sessions   *session.Service
	agenda     *agenda.Service
	voting     *voting.Service
	speeches   *speech.Service
	attendance *attendance.Service
	display    *display.Service
	auditLog   *audit.Log
}

func newDependencies(
	logger *slog.Logger,
	cfg *config.Config,
	pool *pgxpool.Pool,
	stream *redis.AuditStream,
	m *metrics.Metrics,
) (*dependencies, error) {
	policy, err := session.NewPolicy(cfg.Council.TransitionPolicy)
	if err != nil {
		return nil, err
	}

	txm := postgres.NewTxManager(pool)

	sessions := sessionrepo.New(pool)
	documents := documentrepo.New(pool)
	matters := matterrepo.New(pool)
	votes := voterepo.New(pool)
	speeches := speechrepo.New(pool)
	presence := attendancerepo.New(pool)
	control := controlrepo.New(pool)
	auditStore := auditrepo.New(pool)

	sinks := []audit.Sink{auditStore}
	if stream != nil {
		sinks = append(sinks, stream)
	}
	recorder := audit.NewRecorder(logger, m, sinks...)

	return &dependencies{
		log:     logger,
		pool:    pool,
		stream:  stream,
		metrics: m,
		tokens:  auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		limiter: middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval),

		sessions: session.NewService(logger, sessions, control, recorder, txm, policy, session.Config{
			DefaultQuorum: cfg.Council.DefaultQuorum,
			MaxTimer:      time.Duration(cfg.Council.MaxTimerSeconds) * time.Second,
			PageLimit:     cfg.Council.SessionListPageLimit,
		}),
		agenda:     agenda.NewService(logger, documents, matters, sessions, control, votes, recorder, txm),
		voting:     voting.NewService(logger, control, sessions, documents, matters, votes, recorder, txm),
		speeches:   speech.NewService(logger, speeches, sessions, control, recorder, txm, cfg.Council.MaxSpeechMinutes),
		attendance: attendance.NewService(logger, presence, sessions, recorder, txm),
		display: display.NewService(logger, display.Deps{
			Sessions:   sessions,
			Control:    control,
			Documents:  documents,
			Matters:    matters,
			Votes:      votes,
			Attendance: presence,
			Speeches:   speeches,
		}),
		auditLog: audit.NewLog(auditStore),
	}, nil
}

func (d *dependencies) router(cfg *config.Config) http.Handler {
	health := rest.NewHealthHandler(d.pool, Version)
	if d.stream != nil {
		health.WithComponent("redis", d.stream)
	}

	return rest.NewRouter(rest.Handlers{
		Health:    health,
		Public:    rest.NewPublicHandler(d.display, d.speeches, d.attendance, d.log),
		Councilor: rest.NewCouncilorHandler(d.attendance, d.display, d.voting, d.speeches, d.log),
		Session:   rest.NewSessionHandler(d.sessions, d.log),
		Document:  rest.NewDocumentHandler(d.agenda, d.log),
		Matter:    rest.NewMatterHandler(d.agenda, d.log),
		Voting:    rest.NewVotingHandler(d.voting, d.log),
		Speech:    rest.NewSpeechHandler(d.speeches, d.log),
		Audit:     rest.NewAuditHandler(d.auditLog, d.log),
		Metrics:   d.metrics.Handler(),
	}, rest.RouterConfig{
		Global: []middleware.Middleware{
			middleware.RequestID(),
			middleware.ClientInfo(),
			middleware.Recovery(d.log),
			middleware.Metrics(d.metrics),
			middleware.Logger(d.log),
			middleware.CORS(cfg.CORS),
			middleware.Auth(d.tokens),
		},
		PublicLimit:    d.limiter.Limit(cfg.RateLimit.PublicPerMinute),
		CouncilorLimit: d.limiter.Limit(cfg.RateLimit.CouncilorPerMinute),
	})
}

func (d *dependencies) close() {
	d.limiter.Stop()
}
