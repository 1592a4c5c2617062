package models

import "time"

// Result — исторический результат атлета. Только чтение: записи создаются
// внешним процессом начисления очков, которого в этом сервисе нет.
type Result struct {
	ID             int       `json:"id" db:"id"`
	AthleteID      int       `json:"athlete_id" db:"athlete_id"`
	TournamentID   *int      `json:"tournament_id,omitempty" db:"tournament_id"`
	TournamentName *string   `json:"tournament_name,omitempty" db:"tournament_name"`
	ResultDate     time.Time `json:"result_date" db:"result_date"`
	Placement      int       `json:"placement" db:"placement"`
	Points         *int      `json:"points,omitempty" db:"points"`
}
