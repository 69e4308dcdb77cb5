package dto

import model "taskflow.com/taskflow/internal/models"

type TaskPage struct {
	Data  []model.Task `json:"data"`
	Total int64        `json:"total"`
}

// TaskDetail is a single task with its assignments. The assignments key is
// always present, as an empty array when nobody is assigned.
type TaskDetail struct {
	*model.Task
	Assignments []model.TaskAssignment `json:"assignments"`
}

func NewTaskDetail(task *model.Task) TaskDetail {
	assignments := task.Assignments
	if assignments == nil {
		assignments = []model.TaskAssignment{}
	}
	return TaskDetail{Task: task, Assignments: assignments}
}
