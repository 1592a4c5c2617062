package models

import "time"

// BracketStructure — сериализуемая структура сетки, хранится в колонке structure_json.
type BracketStructure struct {
	Participants []Registration `json:"participants"`
	Phases       []BracketPhase `json:"phases"`
	Type         string         `json:"type"`
}

type BracketPhase struct {
	Name    string `json:"name"`
	Round   int    `json:"round"`
	MatchID int    `json:"match_id"`
}

// Bracket — сетка категории турнира, одна на пару (tournament, category).
type Bracket struct {
	ID           int       `json:"id" db:"id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	CategoryID   int       `json:"category_id" db:"category_id"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`

	StructureJSON string            `json:"-" db:"structure_json"`
	Structure     *BracketStructure `json:"structure,omitempty" db:"-"`
}
