package models

import "time"

// TournamentStatus представляет статусы турнира, соответствующие ENUM в БД.
type TournamentStatus string

const (
	TournamentStatusScheduled  TournamentStatus = "scheduled"
	TournamentStatusInProgress TournamentStatus = "in_progress"
	TournamentStatusCompleted  TournamentStatus = "completed"
	TournamentStatusCanceled   TournamentStatus = "canceled"
)

const DefaultBracketType = "single_elimination"

// Tournament представляет турнир.
type Tournament struct {
	ID              int              `json:"id" db:"id"`
	Name            string           `json:"name" db:"name"`
	Description     *string          `json:"description,omitempty" db:"description"`
	Venue           *string          `json:"venue,omitempty" db:"venue"`
	StartDate       time.Time        `json:"start_date" db:"start_date"`
	EndDate         time.Time        `json:"end_date" db:"end_date"`
	BracketType     string           `json:"bracket_type" db:"bracket_type"`
	MaxParticipants *int             `json:"max_participants,omitempty" db:"max_participants"`
	TotalPrize      *float64         `json:"total_prize,omitempty" db:"total_prize"`
	OrganizerID     *int             `json:"organizer_id,omitempty" db:"organizer_id"`
	Status          TournamentStatus `json:"status" db:"status"`
	CreatedAt       time.Time        `json:"created_at" db:"created_at"`

	// Опциональные связанные сущности (не мапятся напрямую)
	Categories []Category `json:"categories,omitempty" db:"-"`
}
