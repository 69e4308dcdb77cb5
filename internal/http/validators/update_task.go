package validators

import dto "taskflow.com/taskflow/internal/data_models"

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Title != nil {
		if err := validateTitle(*r.Title); err != nil {
			return err
		}
	}
	return validateTaskFields(r.Priority, r.OverallStatus, dto.Value(r.DueDate))
}
