package dice

import (
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"
)

// randomRoller implements Roller with math/rand
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a roller whose sequence is fixed by seed
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{rng: rand.New(rand.NewSource(seed))}
}

func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.New("invalid dice count")
	}
	if sides < 1 {
		return nil, errors.New("invalid dice size")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	rolls := make([]int, count)
	for i := range rolls {
		rolls[i] = r.rng.Intn(sides) + 1
		total += rolls[i]
	}

	log.Println("Rolling", count, "d", sides, ":", rolls, "total:", total+bonus)
	return &RollResult{
		Total: total + bonus,
		Rolls: rolls,
		Bonus: bonus,
	}, nil
}
