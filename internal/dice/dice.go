package dice

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/scribbler/internal/dice Roller

// Roller rolls a single die
type Roller interface {
	// Roll returns a uniformly distributed value in [1, sides]
	Roll(sides int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// RandomRoller provides dice rolling functionality backed by math/rand.
// It is safe for concurrent use.
type RandomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &RandomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides.
// A die with fewer than one side always shows 1.
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		return 1
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.random.Intn(sides) + 1
}

// Pool is the result of rolling several dice of the same size
type Pool struct {
	// Rolls holds one face per die, in roll order
	Rolls []int

	// Sum is the arithmetic sum of Rolls
	Sum int
}

// RollPool rolls count dice with the given number of sides.
// Non-positive count or sides yield an empty pool.
func RollPool(roller Roller, count, sides int) Pool {
	if count <= 0 || sides <= 0 {
		return Pool{Rolls: []int{}}
	}

	rolls := make([]int, count)
	sum := 0
	for i := range rolls {
		rolls[i] = roller.Roll(sides)
		sum += rolls[i]
	}

	return Pool{
		Rolls: rolls,
		Sum:   sum,
	}
}
