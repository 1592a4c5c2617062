package models

import "time"

type RegistrationStatus string

const (
	RegistrationStatusConfirmed RegistrationStatus = "confirmed"
	RegistrationStatusCanceled  RegistrationStatus = "canceled"
)

// Registration — заявка атлета (или пары) в категорию турнира.
// В матчах выступает в роли "команды".
type Registration struct {
	ID           int                `json:"id" db:"id"`
	TournamentID int                `json:"tournament_id" db:"tournament_id"`
	CategoryID   int                `json:"category_id" db:"category_id"`
	AthleteID    int                `json:"athlete_id" db:"athlete_id"`
	PartnerID    *int               `json:"partner_id,omitempty" db:"partner_id"`
	TeamName     *string            `json:"team_name,omitempty" db:"team_name"`
	Status       RegistrationStatus `json:"status" db:"status"`
	CreatedAt    time.Time          `json:"created_at" db:"created_at"`
}
