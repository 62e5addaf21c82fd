package domain

import "time"

// VacationStatus is the review state of a vacation request.
type VacationStatus int

const (
	StatusApproved VacationStatus = 1
	StatusRejected VacationStatus = 2
	StatusPending  VacationStatus = 3
)

// Valid reports whether s is one of the known statuses.
func (s VacationStatus) Valid() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusPending:
		return true
	}
	return false
}

func (s VacationStatus) String() string {
	switch s {
	case StatusApproved:
		return "APPROVED"
	case StatusRejected:
		return "REJECTED"
	case StatusPending:
		return "PENDING"
	default:
		return "UNKNOWN"
	}
}

// Vacation is a vacation request. UserName, Username and StatusName are
// populated by joined reads; UserName and Username stay empty on the
// per-user listing, which does not join the users table.
type Vacation struct {
	ID         int64          `json:"id"`
	UserID     int64          `json:"user_id"`
	DateFrom   string         `json:"date_from"`
	DateTo     string         `json:"date_to"`
	Reason     string         `json:"reason"`
	StatusID   VacationStatus `json:"status_id"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	UserName   string         `json:"user_name,omitempty"`
	Username   string         `json:"username,omitempty"`
	StatusName string         `json:"status_name,omitempty"`
}

// StatusDefinition is a row of the vacations_status reference table.
type StatusDefinition struct {
	ID     VacationStatus `json:"id"`
	Status string         `json:"status"`
}
