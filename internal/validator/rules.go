package validator

import (
	"log"

	"jobhub_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные функции валидации
// для доменных enum-полей.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Без этих правил приложение некорректно, стартовать нельзя
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-job-status", validateJobStatus)
	mustRegister("is-workplace-type", validateWorkplaceType)
	mustRegister("is-job-type", validateJobType)
	mustRegister("is-experience-level", validateExperienceLevel)
	mustRegister("is-rate-type", validateRateType)
}

// Пустые значения пропускаем: за обязательность отвечает 'required'

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleUser, models.UserRoleAdmin:
		return true
	}
	return false
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.JobStatus(value) {
	case models.JobStatusOpen, models.JobStatusInProgress, models.JobStatusCompleted, models.JobStatusBlocked:
		return true
	}
	return false
}

func validateWorkplaceType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.WorkplaceType(value) {
	case models.WorkplaceRemote, models.WorkplaceOnsite, models.WorkplaceHybrid:
		return true
	}
	return false
}

func validateJobType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.JobType(value) {
	case models.JobTypeFullTime, models.JobTypePartTime, models.JobTypeContract, models.JobTypeFreelance:
		return true
	}
	return false
}

func validateExperienceLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ExperienceLevel(value) {
	case models.ExperienceEntry, models.ExperienceIntermediate, models.ExperienceExpert:
		return true
	}
	return false
}

func validateRateType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.RateType(value) {
	case models.RateHourly, models.RateDaily, models.RateWeekly, models.RateMonthly:
		return true
	}
	return false
}
