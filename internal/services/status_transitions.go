package services

import (
	"time"

	"taskflow.com/taskflow/internal/constants"
	apperrors "taskflow.com/taskflow/internal/errors"
	model "taskflow.com/taskflow/internal/models"
)

type transition struct {
	from constants.AssignmentStatus
	to   constants.AssignmentStatus
}

type sideEffect func(a *model.TaskAssignment, now time.Time)

// transitionEffects has an entry for every (from, to) pair: no transition is
// forbidden, each only carries its completedAt bookkeeping.
var transitionEffects = buildTransitionEffects()

func buildTransitionEffects() map[transition]sideEffect {
	effects := make(map[transition]sideEffect, len(constants.AssignmentStatuses)*len(constants.AssignmentStatuses))
	for _, from := range constants.AssignmentStatuses {
		for _, to := range constants.AssignmentStatuses {
			if to == constants.AssignmentCompleted {
				effects[transition{from, to}] = markCompleted
			} else {
				effects[transition{from, to}] = clearCompleted
			}
		}
	}
	return effects
}

// markCompleted keeps the first completion time when COMPLETED is saved again.
func markCompleted(a *model.TaskAssignment, now time.Time) {
	if a.CompletedAt == nil {
		a.CompletedAt = &now
	}
}

func clearCompleted(a *model.TaskAssignment, _ time.Time) {
	a.CompletedAt = nil
}

func applyTransition(a *model.TaskAssignment, to constants.AssignmentStatus, now time.Time) error {
	effect, ok := transitionEffects[transition{a.IndividualStatus, to}]
	if !ok {
		return apperrors.ErrInvalidAssignmentStatus
	}
	effect(a, now)
	a.IndividualStatus = to
	return nil
}
