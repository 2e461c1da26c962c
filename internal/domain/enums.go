package domain

// SessionStatus is the phase of a council session.
type SessionStatus string

const (
	SessionStatusScheduled           SessionStatus = "SCHEDULED"
	SessionStatusPequenoExpediente   SessionStatus = "PEQUENO_EXPEDIENTE"
	SessionStatusGrandeExpediente    SessionStatus = "GRANDE_EXPEDIENTE"
	SessionStatusOrdemDoDia          SessionStatus = "ORDEM_DO_DIA"
	SessionStatusConsideracoesFinais SessionStatus = "CONSIDERACOES_FINAIS"
	SessionStatusTribunaLive         SessionStatus = "TRIBUNA_LIVE"
	SessionStatusClosed              SessionStatus = "CLOSED"
)

// SessionPhases lists the phases in their customary running order.
var SessionPhases = []SessionStatus{
	SessionStatusScheduled,
	SessionStatusPequenoExpediente,
	SessionStatusGrandeExpediente,
	SessionStatusOrdemDoDia,
	SessionStatusConsideracoesFinais,
	SessionStatusTribunaLive,
	SessionStatusClosed,
}

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusScheduled, SessionStatusPequenoExpediente, SessionStatusGrandeExpediente,
		SessionStatusOrdemDoDia, SessionStatusConsideracoesFinais, SessionStatusTribunaLive,
		SessionStatusClosed:
		return true
	}
	return false
}

// Role is the authorization level of an actor.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RolePresident Role = "PRESIDENT"
	RoleCouncilor Role = "COUNCILOR"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RolePresident, RoleCouncilor:
		return true
	}
	return false
}

// ItemType identifies which kind of entity a vote targets.
type ItemType string

const (
	ItemTypeDocument ItemType = "DOCUMENT"
	ItemTypeMatter   ItemType = "MATTER"
)

func (t ItemType) String() string { return string(t) }

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeDocument, ItemTypeMatter:
		return true
	}
	return false
}

// VoteType is the choice a voter makes.
type VoteType string

const (
	VoteTypeYes        VoteType = "YES"
	VoteTypeNo         VoteType = "NO"
	VoteTypeAbstention VoteType = "ABSTENTION"
)

func (v VoteType) String() string { return string(v) }

func (v VoteType) IsValid() bool {
	switch v {
	case VoteTypeYes, VoteTypeNo, VoteTypeAbstention:
		return true
	}
	return false
}

// Approval is the outcome of a document vote.
type Approval string

const (
	ApprovalUndecided Approval = "UNDECIDED"
	ApprovalApproved  Approval = "APPROVED"
	ApprovalRejected  Approval = "REJECTED"
)

func (a Approval) String() string { return string(a) }

func (a Approval) IsValid() bool {
	switch a {
	case ApprovalUndecided, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// ApprovalFor maps a boolean vote outcome to an Approval.
func ApprovalFor(approved bool) Approval {
	if approved {
		return ApprovalApproved
	}
	return ApprovalRejected
}

// MatterStatus is the lifecycle state of a matter.
type MatterStatus string

const (
	MatterStatusDraft     MatterStatus = "DRAFT"
	MatterStatusScheduled MatterStatus = "SCHEDULED"
	MatterStatusVoting    MatterStatus = "VOTING"
	MatterStatusApproved  MatterStatus = "APPROVED"
	MatterStatusRejected  MatterStatus = "REJECTED"
)

func (s MatterStatus) String() string { return string(s) }

func (s MatterStatus) IsValid() bool {
	switch s {
	case MatterStatusDraft, MatterStatusScheduled, MatterStatusVoting,
		MatterStatusApproved, MatterStatusRejected:
		return true
	}
	return false
}

// SpeechType is the phase a speech request belongs to.
type SpeechType string

const (
	SpeechTypeConsideracoesFinais SpeechType = "CONSIDERACOES_FINAIS"
	SpeechTypeTribunaLive         SpeechType = "TRIBUNA_LIVE"
)

func (t SpeechType) String() string { return string(t) }

func (t SpeechType) IsValid() bool {
	switch t {
	case SpeechTypeConsideracoesFinais, SpeechTypeTribunaLive:
		return true
	}
	return false
}

// AuditAction names a recorded state change or sensitive read.
type AuditAction string

const (
	AuditActionSessionCreate    AuditAction = "SESSION_CREATE"
	AuditActionSessionUpdate    AuditAction = "SESSION_UPDATE"
	AuditActionSessionDelete    AuditAction = "SESSION_DELETE"
	AuditActionSessionPhase     AuditAction = "SESSION_PHASE"
	AuditActionSessionStart     AuditAction = "SESSION_START"
	AuditActionSessionClose     AuditAction = "SESSION_CLOSE"
	AuditActionAttendanceToggle AuditAction = "ATTENDANCE_TOGGLE"
	AuditActionSpeechToggle     AuditAction = "SPEECH_REQUESTS_TOGGLE"
	AuditActionTimerStart       AuditAction = "TIMER_START"
	AuditActionTimerStop        AuditAction = "TIMER_STOP"
	AuditActionDocumentCreate   AuditAction = "DOCUMENT_CREATE"
	AuditActionDocumentUpdate   AuditAction = "DOCUMENT_UPDATE"
	AuditActionDocumentDelete   AuditAction = "DOCUMENT_DELETE"
	AuditActionAgendaAdd        AuditAction = "AGENDA_ADD"
	AuditActionAgendaRemove     AuditAction = "AGENDA_REMOVE"
	AuditActionReadingSet       AuditAction = "READING_SET"
	AuditActionMatterCreate     AuditAction = "MATTER_CREATE"
	AuditActionMatterUpdate     AuditAction = "MATTER_UPDATE"
	AuditActionMatterAttach     AuditAction = "MATTER_ATTACH"
	AuditActionMatterDetach     AuditAction = "MATTER_DETACH"
	AuditActionVotingStart      AuditAction = "VOTING_START"
	AuditActionVotingEnd        AuditAction = "VOTING_END"
	AuditActionVoteCast         AuditAction = "VOTE_CAST"
	AuditActionResultView       AuditAction = "RESULT_VIEW"
	AuditActionAttendanceMark   AuditAction = "ATTENDANCE_MARK"
	AuditActionSpeechSubmit     AuditAction = "SPEECH_SUBMIT"
	AuditActionSpeechApprove    AuditAction = "SPEECH_APPROVE"
	AuditActionSpeechReject     AuditAction = "SPEECH_REJECT"
	AuditActionSpeechDelete     AuditAction = "SPEECH_DELETE"
	AuditActionSpeechReorder    AuditAction = "SPEECH_REORDER"
	AuditActionSpeechStart      AuditAction = "SPEECH_START"
	AuditActionSpeechEnd        AuditAction = "SPEECH_END"
)

func (a AuditAction) String() string { return string(a) }
