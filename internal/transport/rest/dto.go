package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/camara-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

type timerResponse struct {
	StartedAt       *time.Time `json:"startedAt"`
	DurationSeconds int        `json:"durationSeconds"`
	Phase           *string    `json:"phase,omitempty"`
}

type sessionResponse struct {
	ID                   uuid.UUID      `json:"id"`
	Number               string         `json:"number"`
	Title                string         `json:"title"`
	Description          *string        `json:"description,omitempty"`
	ScheduledAt          time.Time      `json:"scheduledAt"`
	Status               string         `json:"status"`
	Quorum               int            `json:"quorum"`
	IsAttendanceOpen     bool           `json:"isAttendanceOpen"`
	AttendanceStartedAt  *time.Time     `json:"attendanceStartedAt,omitempty"`
	AttendanceEndedAt    *time.Time     `json:"attendanceEndedAt,omitempty"`
	IsSpeechRequestsOpen bool           `json:"isSpeechRequestsOpen"`
	Timer                *timerResponse `json:"timer,omitempty"`
	StartedAt            *time.Time     `json:"startedAt,omitempty"`
	ClosedAt             *time.Time     `json:"closedAt,omitempty"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
}

type sessionSummaryResponse struct {
	sessionResponse
	DocumentCount int `json:"documentCount"`
	PresentCount  int `json:"presentCount"`
}

type sessionListResponse struct {
	Items []sessionSummaryResponse `json:"items"`
	Total int                      `json:"total"`
}

func toSessionResponse(s *domain.Session) sessionResponse {
	resp := sessionResponse{
		ID:                   s.ID,
		Number:               s.Number.String(),
		Title:                s.Title,
		Description:          s.Description,
		ScheduledAt:          s.ScheduledAt,
		Status:               s.Status.String(),
		Quorum:               s.Quorum,
		IsAttendanceOpen:     s.IsAttendanceOpen,
		AttendanceStartedAt:  s.AttendanceStartedAt,
		AttendanceEndedAt:    s.AttendanceEndedAt,
		IsSpeechRequestsOpen: s.IsSpeechRequestsOpen,
		StartedAt:            s.StartedAt,
		ClosedAt:             s.ClosedAt,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
	if s.Timer.IsSet() {
		resp.Timer = &timerResponse{
			StartedAt:       s.Timer.StartedAt,
			DurationSeconds: int(s.Timer.Duration / time.Second),
			Phase:           s.Timer.Phase,
		}
	}
	return resp
}

func toSessionSummaries(list []domain.SessionSummary) []sessionSummaryResponse {
	out := make([]sessionSummaryResponse, 0, len(list))
	for i := range list {
		out = append(out, sessionSummaryResponse{
			sessionResponse: toSessionResponse(&list[i].Session),
			DocumentCount:   list[i].DocumentCount,
			PresentCount:    list[i].PresentCount,
		})
	}
	return out
}

// ---------------------------------------------------------------------------
// Agenda
// ---------------------------------------------------------------------------

type documentResponse struct {
	ID              uuid.UUID  `json:"id"`
	SessionID       uuid.UUID  `json:"sessionId"`
	Title           string     `json:"title"`
	Type            string     `json:"type"`
	Phase           string     `json:"phase"`
	Author          *string    `json:"author,omitempty"`
	Description     *string    `json:"description,omitempty"`
	OrderIndex      int        `json:"orderIndex"`
	IsOrdemDoDia    bool       `json:"isOrdemDoDia"`
	Approval        string     `json:"approval"`
	IsBeingRead     bool       `json:"isBeingRead"`
	IsVoting        bool       `json:"isVoting"`
	VotingStartedAt *time.Time `json:"votingStartedAt,omitempty"`
	VotingEndedAt   *time.Time `json:"votingEndedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func toDocumentResponse(d *domain.Document) documentResponse {
	return documentResponse{
		ID:              d.ID,
		SessionID:       d.SessionID,
		Title:           d.Title,
		Type:            d.Type,
		Phase:           d.Phase,
		Author:          d.Author,
		Description:     d.Description,
		OrderIndex:      d.OrderIndex,
		IsOrdemDoDia:    d.IsOrdemDoDia,
		Approval:        d.Approval.String(),
		IsBeingRead:     d.IsBeingRead,
		IsVoting:        d.IsVoting,
		VotingStartedAt: d.VotingStartedAt,
		VotingEndedAt:   d.VotingEndedAt,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func toDocumentResponses(list []domain.Document) []documentResponse {
	out := make([]documentResponse, 0, len(list))
	for i := range list {
		out = append(out, toDocumentResponse(&list[i]))
	}
	return out
}

type matterResponse struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Description     *string    `json:"description,omitempty"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	VotingStartedAt *time.Time `json:"votingStartedAt,omitempty"`
	VotingEndedAt   *time.Time `json:"votingEndedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func toMatterResponse(m *domain.Matter) matterResponse {
	return matterResponse{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		Type:            m.Type,
		Status:          m.Status.String(),
		VotingStartedAt: m.VotingStartedAt,
		VotingEndedAt:   m.VotingEndedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toMatterResponses(list []domain.Matter) []matterResponse {
	out := make([]matterResponse, 0, len(list))
	for i := range list {
		out = append(out, toMatterResponse(&list[i]))
	}
	return out
}

// ---------------------------------------------------------------------------
// Voting
// ---------------------------------------------------------------------------

type tallyResponse struct {
	Yes        int `json:"yes"`
	No         int `json:"no"`
	Abstention int `json:"abstention"`
	Total      int `json:"total"`
}

func toTallyResponse(t domain.Tally) tallyResponse {
	return tallyResponse{Yes: t.Yes, No: t.No, Abstention: t.Abstention, Total: t.Total()}
}

type activeVoteResponse struct {
	ItemType  string        `json:"itemType"`
	ItemID    uuid.UUID     `json:"itemId"`
	Title     string        `json:"title"`
	StartedAt *time.Time    `json:"startedAt,omitempty"`
	Tally     tallyResponse `json:"tally"`
	Eligible  int           `json:"eligible"`
}

func toActiveVoteResponse(v *domain.ActiveVote) *activeVoteResponse {
	if v == nil {
		return nil
	}
	return &activeVoteResponse{
		ItemType:  v.Item.Type.String(),
		ItemID:    v.Item.ID,
		Title:     v.Title,
		StartedAt: v.StartedAt,
		Tally:     toTallyResponse(v.Tally),
		Eligible:  v.Eligible,
	}
}

type voteResultResponse struct {
	ItemType string        `json:"itemType"`
	ItemID   uuid.UUID     `json:"itemId"`
	Title    string        `json:"title"`
	Tally    tallyResponse `json:"tally"`
	Approved bool          `json:"approved"`
	EndedAt  *time.Time    `json:"endedAt,omitempty"`
}

func toVoteResultResponse(r *domain.VoteResult) voteResultResponse {
	return voteResultResponse{
		ItemType: r.Item.Type.String(),
		ItemID:   r.Item.ID,
		Title:    r.Title,
		Tally:    toTallyResponse(r.Tally),
		Approved: r.Approved,
		EndedAt:  r.EndedAt,
	}
}

type voteResponse struct {
	ID        uuid.UUID `json:"id"`
	ItemType  string    `json:"itemType"`
	ItemID    uuid.UUID `json:"itemId"`
	VoteType  string    `json:"voteType"`
	CreatedAt time.Time `json:"createdAt"`
}

func toVoteResponse(v *domain.Vote) voteResponse {
	return voteResponse{
		ID:        v.ID,
		ItemType:  v.ItemType.String(),
		ItemID:    v.ItemID,
		VoteType:  v.VoteType.String(),
		CreatedAt: v.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Speeches
// ---------------------------------------------------------------------------

type speechRequestResponse struct {
	ID                uuid.UUID  `json:"id"`
	SessionID         uuid.UUID  `json:"sessionId"`
	UserID            *uuid.UUID `json:"userId,omitempty"`
	CitizenName       *string    `json:"citizenName,omitempty"`
	CitizenProfession *string    `json:"citizenProfession,omitempty"`
	Type              string     `json:"type"`
	Subject           string     `json:"subject"`
	IsApproved        bool       `json:"isApproved"`
	OrderIndex        int        `json:"orderIndex"`
	IsSpeaking        bool       `json:"isSpeaking"`
	HasSpoken         bool       `json:"hasSpoken"`
	TimeLimit         int        `json:"timeLimit"`
	StartedAt         *time.Time `json:"startedAt,omitempty"`
	EndedAt           *time.Time `json:"endedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

func toSpeechRequestResponse(r *domain.SpeechRequest) speechRequestResponse {
	return speechRequestResponse{
		ID:                r.ID,
		SessionID:         r.SessionID,
		UserID:            r.UserID,
		CitizenName:       r.CitizenName,
		CitizenProfession: r.CitizenProfession,
		Type:              r.Type.String(),
		Subject:           r.Subject,
		IsApproved:        r.IsApproved,
		OrderIndex:        r.OrderIndex,
		IsSpeaking:        r.IsSpeaking,
		HasSpoken:         r.HasSpoken,
		TimeLimit:         r.TimeLimit,
		StartedAt:         r.StartedAt,
		EndedAt:           r.EndedAt,
		CreatedAt:         r.CreatedAt,
	}
}

func toSpeechRequestResponses(list []domain.SpeechRequest) []speechRequestResponse {
	out := make([]speechRequestResponse, 0, len(list))
	for i := range list {
		out = append(out, toSpeechRequestResponse(&list[i]))
	}
	return out
}

type speechQueueResponse struct {
	IsOpen              bool                    `json:"isOpen"`
	ConsideracoesFinais []speechRequestResponse `json:"consideracoesFinais"`
	TribunaLive         []speechRequestResponse `json:"tribunaLive"`
}

func toSpeechQueueResponse(q domain.SpeechQueue) speechQueueResponse {
	return speechQueueResponse{
		IsOpen:              q.IsOpen,
		ConsideracoesFinais: toSpeechRequestResponses(q.ConsideracoesFinais),
		TribunaLive:         toSpeechRequestResponses(q.TribunaLive),
	}
}

// ---------------------------------------------------------------------------
// Attendance
// ---------------------------------------------------------------------------

type attendanceResponse struct {
	SessionID uuid.UUID  `json:"sessionId"`
	VoterID   uuid.UUID  `json:"voterId"`
	IsPresent bool       `json:"isPresent"`
	ArrivedAt *time.Time `json:"arrivedAt,omitempty"`
}

type attendanceEntryResponse struct {
	VoterID   uuid.UUID  `json:"voterId"`
	IsPresent bool       `json:"isPresent"`
	ArrivedAt *time.Time `json:"arrivedAt,omitempty"`
}

type quorumResponse struct {
	PresentCount int  `json:"presentCount"`
	Required     int  `json:"required"`
	HasQuorum    bool `json:"hasQuorum"`
}

func toQuorumResponse(q domain.Quorum) quorumResponse {
	return quorumResponse{PresentCount: q.PresentCount, Required: q.Required, HasQuorum: q.HasQuorum()}
}

type attendanceBoardResponse struct {
	Quorum  quorumResponse            `json:"quorum"`
	Entries []attendanceEntryResponse `json:"entries"`
}

// ---------------------------------------------------------------------------
// Displays
// ---------------------------------------------------------------------------

type speakerResponse struct {
	Request          speechRequestResponse `json:"request"`
	RemainingSeconds int                   `json:"remainingSeconds"`
}

type snapshotTimerResponse struct {
	Phase            *string `json:"phase,omitempty"`
	RemainingSeconds int     `json:"remainingSeconds"`
}

type snapshotResponse struct {
	Session       *sessionResponse       `json:"session"`
	ReadingDoc    *documentResponse      `json:"readingDocument"`
	ActiveVote    *activeVoteResponse    `json:"activeVote"`
	Timer         *snapshotTimerResponse `json:"timer"`
	ActiveSpeaker *speakerResponse       `json:"activeSpeaker"`
	Quorum        quorumResponse         `json:"quorum"`
	SpeechQueue   speechQueueResponse    `json:"speechQueue"`
	GeneratedAt   time.Time              `json:"generatedAt"`
}

func toSnapshotResponse(s *domain.Snapshot) snapshotResponse {
	resp := snapshotResponse{
		ActiveVote:  toActiveVoteResponse(s.ActiveVote),
		Quorum:      toQuorumResponse(s.Quorum),
		SpeechQueue: toSpeechQueueResponse(s.SpeechQueue),
		GeneratedAt: s.GeneratedAt,
	}
	if s.Session != nil {
		sess := toSessionResponse(s.Session)
		resp.Session = &sess
	}
	if s.ReadingDoc != nil {
		doc := toDocumentResponse(s.ReadingDoc)
		resp.ReadingDoc = &doc
	}
	if s.Timer != nil {
		resp.Timer = &snapshotTimerResponse{Phase: s.Timer.Phase, RemainingSeconds: seconds(s.Timer.Remaining)}
	}
	if s.ActiveSpeaker != nil {
		resp.ActiveSpeaker = &speakerResponse{
			Request:          toSpeechRequestResponse(&s.ActiveSpeaker.Request),
			RemainingSeconds: seconds(s.ActiveSpeaker.Remaining),
		}
	}
	return resp
}

type councilorStatusResponse struct {
	SessionID      uuid.UUID               `json:"sessionId"`
	SessionStatus  string                  `json:"sessionStatus"`
	IsPresent      bool                    `json:"isPresent"`
	ArrivedAt      *time.Time              `json:"arrivedAt,omitempty"`
	ActiveVote     *activeVoteResponse     `json:"activeVote"`
	MyVote         *string                 `json:"myVote"`
	SpeechRequests []speechRequestResponse `json:"speechRequests"`
	QueuePosition  int                     `json:"queuePosition"`
	Quorum         quorumResponse          `json:"quorum"`
}

func toCouncilorStatusResponse(s *domain.CouncilorStatus) councilorStatusResponse {
	resp := councilorStatusResponse{
		SessionID:      s.SessionID,
		SessionStatus:  s.SessionStatus.String(),
		IsPresent:      s.IsPresent,
		ArrivedAt:      s.ArrivedAt,
		ActiveVote:     toActiveVoteResponse(s.ActiveVote),
		SpeechRequests: toSpeechRequestResponses(s.SpeechRequests),
		QueuePosition:  s.QueuePosition,
		Quorum:         toQuorumResponse(s.Quorum),
	}
	if s.MyVote != nil {
		v := s.MyVote.String()
		resp.MyVote = &v
	}
	return resp
}

// ---------------------------------------------------------------------------
// Audit
// ---------------------------------------------------------------------------

type auditRecordResponse struct {
	ID        uuid.UUID      `json:"id"`
	ActorID   *uuid.UUID     `json:"actorId,omitempty"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details"`
	IPAddress *string        `json:"ipAddress,omitempty"`
	UserAgent *string        `json:"userAgent,omitempty"`
	CreatedAt time.Time      `json:"timestamp"`
}

func toAuditRecordResponses(list []domain.AuditRecord) []auditRecordResponse {
	out := make([]auditRecordResponse, 0, len(list))
	for _, r := range list {
		out = append(out, auditRecordResponse{
			ID:        r.ID,
			ActorID:   r.ActorID,
			Action:    r.Action.String(),
			Details:   r.Details,
			IPAddress: r.IPAddress,
			UserAgent: r.UserAgent,
			CreatedAt: r.CreatedAt,
		})
	}
	return out
}

// seconds rounds a remaining duration up so a display never shows 0 while
// time is left.
func seconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
