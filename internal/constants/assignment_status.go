package constants

// AssignmentStatus is the progress of a single assignee on a task.
// Any status may follow any other.
type AssignmentStatus string

const (
	AssignmentPending    AssignmentStatus = "PENDING"
	AssignmentInProgress AssignmentStatus = "IN_PROGRESS"
	AssignmentCompleted  AssignmentStatus = "COMPLETED"
	AssignmentBlocked    AssignmentStatus = "BLOCKED"
)

var AssignmentStatuses = []AssignmentStatus{
	AssignmentPending,
	AssignmentInProgress,
	AssignmentCompleted,
	AssignmentBlocked,
}

func (s AssignmentStatus) Valid() bool {
	for _, v := range AssignmentStatuses {
		if s == v {
			return true
		}
	}
	return false
}
