package model

// Status is the lifecycle of the single projects request.
type Status int

const (
	StatusInitial Status = iota
	StatusInProgress
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "IN_PROGRESS"
	case StatusSuccess:
		return "SUCCESS"
	case StatusFailure:
		return "FAILURE"
	default:
		return "INITIAL"
	}
}
