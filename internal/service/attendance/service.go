package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/camara-backend/internal/domain"
	"github.com/heartmarshall/camara-backend/internal/service/authz"
)

type attendanceRepo interface {
	MarkPresent(ctx context.Context, sessionID, voterID uuid.UUID, at time.Time) (*domain.Attendance, error)
	CountPresent(ctx context.Context, sessionID uuid.UUID) (int, error)
	List(ctx context.Context, sessionID uuid.UUID) ([]domain.AttendanceEntry, error)
}

type sessionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
}

type auditRecorder interface {
	Record(ctx context.Context, action domain.AuditAction, details map[string]any)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service tracks voter presence and the live quorum.
type Service struct {
	attendance attendanceRepo
	sessions   sessionRepo
	audit      auditRecorder
	tx         txManager
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new attendance service.
func NewService(
	log *slog.Logger,
	attendance attendanceRepo,
	sessions sessionRepo,
	audit auditRecorder,
	tx txManager,
) *Service {
	return &Service{
		attendance: attendance,
		sessions:   sessions,
		audit:      audit,
		tx:         tx,
		now:        time.Now,
		log:        log.With("service", "attendance"),
	}
}

// MarkPresent registers the calling voter as present while attendance is
// open. A voter is registered at most once per session.
func (s *Service) MarkPresent(ctx context.Context, sessionID uuid.UUID) (*domain.Attendance, error) {
	actor, err := authz.Require(ctx, authz.Voters)
	if err != nil {
		return nil, err
	}
	if sessionID == uuid.Nil {
		return nil, domain.NewValidationError("session_id", "required")
	}

	var marked *domain.Attendance
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		sess, err := s.sessions.GetByID(txCtx, sessionID)
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		if !sess.IsAttendanceOpen {
			return domain.NewConflictError(domain.ReasonAttendanceClosed)
		}

		marked, err = s.attendance.MarkPresent(txCtx, sessionID, actor.ID, s.now())
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.NewConflictError(domain.ReasonAlreadyPresent)
		}
		if err != nil {
			return fmt.Errorf("mark present: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, domain.AuditActionAttendanceMark, map[string]any{
		"session_id": sessionID.String(),
	})

	s.log.InfoContext(ctx, "presence registered",
		slog.String("session_id", sessionID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return marked, nil
}

// Quorum returns the live presence count of a session against its quorum.
func (s *Service) Quorum(ctx context.Context, sessionID uuid.UUID) (domain.Quorum, error) {
	if sessionID == uuid.Nil {
		return domain.Quorum{}, domain.NewValidationError("session_id", "required")
	}

	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return domain.Quorum{}, fmt.Errorf("get session: %w", err)
	}
	present, err := s.attendance.CountPresent(ctx, sessionID)
	if err != nil {
		return domain.Quorum{}, fmt.Errorf("count present: %w", err)
	}
	return domain.Quorum{PresentCount: present, Required: sess.Quorum}, nil
}

// List returns the attendance board of a session.
func (s *Service) List(ctx context.Context, sessionID uuid.UUID) ([]domain.AttendanceEntry, error) {
	if sessionID == uuid.Nil {
		return nil, domain.NewValidationError("session_id", "required")
	}

	if _, err := s.sessions.GetByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	entries, err := s.attendance.List(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	return entries, nil
}
