package services

import "github.com/OmKardile/online-car-service-station/internal/models"

// statusTransitions описывает разрешённые переходы между статусами.
// completed и cancelled — терминальные.
var statusTransitions = map[string][]string{
	models.StatusPending:    {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed:  {models.StatusInProgress, models.StatusCancelled},
	models.StatusInProgress: {models.StatusCompleted},
	models.StatusCompleted:  {},
	models.StatusCancelled:  {},
}

// KnownStatus сообщает, является ли значение допустимым статусом бронирования.
func KnownStatus(status string) bool {
	_, ok := statusTransitions[status]
	return ok
}

// CanTransition сообщает, разрешён ли переход из статуса from в статус to.
func CanTransition(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
