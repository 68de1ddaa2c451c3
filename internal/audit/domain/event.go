package domain

import "time"

// Event kinds recorded by the service's own flows. Callers of POST /audit may
// record their own kinds as well.
const (
	KindAuthFail = "AUTH_FAIL"
)

// Event is one audit interaction record.
type Event struct {
	ID          string
	ExternalID  string
	Phone       string
	PersonnelID int64
	Kind        string
	Detail      string
	CreatedAt   time.Time
}
