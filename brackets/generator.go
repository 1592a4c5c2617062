package brackets

import (
	"context"

	"github.com/opencourt/tournament-api/models"
)

// Pair — два слота первого круга, значения — id заявок (Registration).
type Pair struct {
	Team1ID int
	Team2ID int
}

// FirstRound — результат жеребьёвки: порядок посева и пары первого круга.
// При нечётном числе заявок последняя остаётся вне пар (bye не создаётся).
type FirstRound struct {
	Seeding []models.Registration
	Pairs   []Pair
}

type GenerateParams struct {
	Registrations []models.Registration
}

type Generator interface {
	Generate(ctx context.Context, params GenerateParams) (*FirstRound, error)

	GetName() string
}
