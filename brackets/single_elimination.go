package brackets

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"github.com/opencourt/tournament-api/models"
)

var ErrNotEnoughParticipants = errors.New("not enough participants to generate a bracket (minimum 2)")

// SingleEliminationGenerator раздаёт пары первого круга случайной жеребьёвкой.
// Источник случайности внедряется, чтобы жеребьёвка была воспроизводимой в тестах.
type SingleEliminationGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSingleEliminationGenerator(src rand.Source) Generator {
	return &SingleEliminationGenerator{rnd: rand.New(src)}
}

func (g *SingleEliminationGenerator) GetName() string {
	return models.DefaultBracketType
}

func (g *SingleEliminationGenerator) Generate(ctx context.Context, params GenerateParams) (*FirstRound, error) {
	n := len(params.Registrations)
	if n < 2 {
		return nil, ErrNotEnoughParticipants
	}

	seeding := make([]models.Registration, n)
	copy(seeding, params.Registrations)

	// rand.Rand не потокобезопасен, генерация может идти из параллельных запросов.
	g.mu.Lock()
	g.rnd.Shuffle(n, func(i, j int) {
		seeding[i], seeding[j] = seeding[j], seeding[i]
	})
	g.mu.Unlock()

	pairs := make([]Pair, 0, n/2)
	for i := 0; i+1 < n; i += 2 {
		pairs = append(pairs, Pair{
			Team1ID: seeding[i].ID,
			Team2ID: seeding[i+1].ID,
		})
	}

	return &FirstRound{Seeding: seeding, Pairs: pairs}, nil
}
