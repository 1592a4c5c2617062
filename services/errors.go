package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки валидации и бизнес-правил
	ErrValidationFailed           = errors.New("validation failed")
	ErrAthleteNameRequired        = errors.New("athlete name is required")
	ErrAthleteEmailRequired       = errors.New("athlete email is required")
	ErrInvalidDateFormat          = errors.New("date must be in YYYY-MM-DD format")
	ErrTournamentNameRequired     = errors.New("tournament name is required")
	ErrTournamentDatesRequired    = errors.New("tournament start and end dates are required")
	ErrTournamentInvalidDateRange = errors.New("tournament end date must not be before start date")
	ErrCategoryNameRequired       = errors.New("category name is required")
	ErrRegistrationIDsRequired    = errors.New("tournament, category and athlete ids are required")
	ErrRegistrationInvalidRef     = errors.New("registration references an unknown tournament, category or athlete")
	ErrMatchScoresRequired        = errors.New("both team scores are required")
	ErrNotEnoughParticipants      = errors.New("not enough confirmed participants to generate a bracket")

	// Ошибки конфликтов
	ErrAthleteEmailConflict = errors.New("email address is already registered")
	ErrRegistrationConflict = errors.New("athlete is already registered in this category")

	// Ошибки, специфичные для сущностей (дублируют ErrNotFound, но дают больше контекста)
	ErrAthleteNotFound      = errors.New("athlete not found")
	ErrTournamentNotFound   = errors.New("tournament not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrMatchNotFound        = errors.New("match not found")
	ErrBracketNotFound      = errors.New("bracket not found")
)
