package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// ActiveStatuses are the statuses that count toward conflict detection.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed, StatusInProgress}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsActive reports whether a booking in this status still occupies its
// time slot.
func IsActive(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress:
		return true
	}
	return false
}

// IsTerminal reports whether a booking can no longer be rescheduled.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}
