package models

import "time"

type Athlete struct {
	ID              int        `json:"id" db:"id"`
	Name            string     `json:"name" db:"name"`
	Email           string     `json:"email" db:"email"`
	BirthDate       *time.Time `json:"birth_date,omitempty" db:"birth_date"`
	Height          *float64   `json:"height,omitempty" db:"height"`
	Weight          *float64   `json:"weight,omitempty" db:"weight"`
	Country         *string    `json:"country,omitempty" db:"country"`
	Category        *string    `json:"category,omitempty" db:"category"`
	RankingPosition *int       `json:"ranking_position,omitempty" db:"ranking_position"`
	Active          bool       `json:"active" db:"active"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`

	PhotoKey *string `json:"-" db:"photo_key"`
	PhotoURL *string `json:"photo_url,omitempty" db:"-"`
}
