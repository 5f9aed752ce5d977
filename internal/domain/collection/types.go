package collection

// MaxMembers is the hard capacity of a collection, owner included.
// Reaching it activates the capacity lock.
const MaxMembers = 5

type ParticipantStatus string

const (
	StatusPending  ParticipantStatus = "pending"
	StatusApproved ParticipantStatus = "approved"
	StatusRejected ParticipantStatus = "rejected"
)

func (s ParticipantStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func (s ParticipantStatus) String() string {
	return string(s)
}

func NewParticipantStatus(s string) (ParticipantStatus, error) {
	status := ParticipantStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
