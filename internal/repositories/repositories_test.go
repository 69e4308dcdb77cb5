package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taskflow.com/taskflow/internal/constants"
	dto "taskflow.com/taskflow/internal/data_models"
	apperrors "taskflow.com/taskflow/internal/errors"
	model "taskflow.com/taskflow/internal/models"
	"taskflow.com/taskflow/internal/testutil"
)

func newRepos(t *testing.T) (*gorm.DB, *TaskRepository, *AssignmentRepository) {
	t.Helper()
	db := testutil.NewDB(t)
	return db, NewTaskRepository(db), NewAssignmentRepository(db)
}

func createTask(t *testing.T, repo *TaskRepository, title string, createdBy uint) *model.Task {
	t.Helper()
	task := &model.Task{
		Title:           title,
		Priority:        constants.PriorityMedium,
		OverallStatus:   constants.StatusPending,
		CreatedByUserID: createdBy,
	}
	require.NoError(t, repo.Create(context.Background(), task))
	require.NotZero(t, task.ID)
	return task
}

func assign(t *testing.T, repo *AssignmentRepository, taskID, userID uint) *model.TaskAssignment {
	t.Helper()
	a := &model.TaskAssignment{
		TaskID:           taskID,
		UserID:           userID,
		IndividualStatus: constants.AssignmentPending,
		AssignedAt:       time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func TestTaskRepository_FindByIDNotFound(t *testing.T) {
	_, tasks, _ := newRepos(t)

	_, err := tasks.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestTaskRepository_ListPaginatesWithTotal(t *testing.T) {
	_, tasks, _ := newRepos(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		createTask(t, tasks, "task", 1)
	}

	page, total, err := tasks.List(ctx, dto.TaskFilter{Take: 2})
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, int64(5), total)

	// newest first
	assert.Greater(t, page[0].ID, page[1].ID)

	rest, total, err := tasks.List(ctx, dto.TaskFilter{Skip: 4, Take: 10})
	require.NoError(t, err)
	assert.Len(t, rest, 1)
	assert.Equal(t, int64(5), total)
}

func TestTaskRepository_ListDefaultsTake(t *testing.T) {
	_, tasks, _ := newRepos(t)

	for i := 0; i < dto.DefaultTake+3; i++ {
		createTask(t, tasks, "task", 1)
	}

	page, total, err := tasks.List(context.Background(), dto.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, page, dto.DefaultTake)
	assert.Equal(t, int64(dto.DefaultTake+3), total)
}

func TestTaskRepository_ListFilters(t *testing.T) {
	_, tasks, assignments := newRepos(t)
	ctx := context.Background()

	first := createTask(t, tasks, "first", 1)
	second := createTask(t, tasks, "second", 1)
	third := createTask(t, tasks, "third", 2)

	second.Priority = constants.PriorityUrgent
	second.OverallStatus = constants.StatusOnHold
	require.NoError(t, tasks.Update(ctx, second))

	assign(t, assignments, first.ID, 7)
	assign(t, assignments, third.ID, 7)
	assign(t, assignments, third.ID, 8)

	creator := uint(1)
	page, total, err := tasks.List(ctx, dto.TaskFilter{CreatedByUserID: &creator})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, page, 2)

	urgent := constants.PriorityUrgent
	page, _, err = tasks.List(ctx, dto.TaskFilter{Priority: &urgent})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, second.ID, page[0].ID)

	onHold := constants.StatusOnHold
	page, _, err = tasks.List(ctx, dto.TaskFilter{OverallStatus: &onHold})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, second.ID, page[0].ID)

	user := uint(7)
	page, total, err = tasks.List(ctx, dto.TaskFilter{AssignedToUserID: &user})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, page, 2)
	assert.Equal(t, third.ID, page[0].ID)
	assert.Equal(t, "third", page[0].Title)
	assert.Equal(t, first.ID, page[1].ID)

	// assignee filter combines with the other filters
	page, total, err = tasks.List(ctx, dto.TaskFilter{AssignedToUserID: &user, CreatedByUserID: &creator})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, page, 1)
	assert.Equal(t, first.ID, page[0].ID)

	nobody := uint(99)
	page, total, err = tasks.List(ctx, dto.TaskFilter{AssignedToUserID: &nobody, CreatedByUserID: &creator})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, page)
}

func TestTaskRepository_UpdateMissing(t *testing.T) {
	_, tasks, _ := newRepos(t)

	err := tasks.Update(context.Background(), &model.Task{ID: 9, Title: "ghost"})
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)

	err = tasks.UpdateOverallStatus(context.Background(), 9, constants.StatusCompleted)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestTaskRepository_DeleteCascadesAssignments(t *testing.T) {
	db, tasks, assignments := newRepos(t)
	ctx := context.Background()

	task := createTask(t, tasks, "doomed", 1)
	assign(t, assignments, task.ID, 2)
	assign(t, assignments, task.ID, 3)

	require.NoError(t, tasks.Delete(ctx, task.ID))

	var remaining int64
	require.NoError(t, db.Model(&model.TaskAssignment{}).Where("task_id = ?", task.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)

	assert.ErrorIs(t, tasks.Delete(ctx, task.ID), apperrors.ErrTaskNotFound)
}

func TestAssignmentRepository_UniquePair(t *testing.T) {
	db, tasks, assignments := newRepos(t)
	ctx := context.Background()

	task := createTask(t, tasks, "shared", 1)
	assign(t, assignments, task.ID, 2)

	dup := &model.TaskAssignment{
		TaskID:           task.ID,
		UserID:           2,
		IndividualStatus: constants.AssignmentPending,
		AssignedAt:       time.Now().UTC(),
	}
	err := assignments.Create(ctx, dup)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyAssigned)

	var count int64
	require.NoError(t, db.Model(&model.TaskAssignment{}).
		Where("task_id = ? AND user_id = ?", task.ID, 2).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAssignmentRepository_CreateForMissingTask(t *testing.T) {
	_, _, assignments := newRepos(t)

	err := assignments.Create(context.Background(), &model.TaskAssignment{
		TaskID:           404,
		UserID:           2,
		IndividualStatus: constants.AssignmentPending,
		AssignedAt:       time.Now().UTC(),
	})
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestAssignmentRepository_UpdateAndDelete(t *testing.T) {
	_, tasks, assignments := newRepos(t)
	ctx := context.Background()

	task := createTask(t, tasks, "work", 1)
	a := assign(t, assignments, task.ID, 2)

	notes := "halfway"
	a.IndividualStatus = constants.AssignmentInProgress
	a.Notes = &notes
	require.NoError(t, assignments.Update(ctx, a))

	got, err := assignments.FindByTaskAndUser(ctx, task.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, constants.AssignmentInProgress, got.IndividualStatus)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "halfway", *got.Notes)

	require.NoError(t, assignments.DeleteByTaskAndUser(ctx, task.ID, 2))
	assert.ErrorIs(t, assignments.DeleteByTaskAndUser(ctx, task.ID, 2), apperrors.ErrAssignmentNotFound)

	// an update racing with the delete must not bring the row back
	assert.ErrorIs(t, assignments.Update(ctx, a), apperrors.ErrAssignmentNotFound)
	exists, err := assignments.ExistsForTaskAndUser(ctx, task.ID, 2)
	require.NoError(t, err)
	assert.False(t, exists)
}
