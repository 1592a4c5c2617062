package models

type Category struct {
	ID           int     `json:"id" db:"id"`
	TournamentID int     `json:"tournament_id" db:"tournament_id"`
	Name         string  `json:"name" db:"name"`
	Description  *string `json:"description,omitempty" db:"description"`

	// Заполняется сервисом при выдаче деталей турнира, в БД не хранится.
	TotalRegistrations *int `json:"total_registrations,omitempty" db:"-"`
}
