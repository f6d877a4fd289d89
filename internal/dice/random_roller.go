package dice

import (
	"fmt"
	"math/rand"
)

// randomRoller implements Roller using math/rand
type randomRoller struct{}

// NewRandomRoller creates a new random dice roller
func NewRandomRoller() Roller {
	return &randomRoller{}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("dice count must be at least 1, got %d", count)
	}
	if sides < 2 {
		return nil, fmt.Errorf("dice must have at least 2 sides, got %d", sides)
	}

	rolls := make([]int, count)
	rawTotal := 0
	for i := range rolls {
		rolls[i] = rand.Intn(sides) + 1
		rawTotal += rolls[i]
	}

	return &RollResult{
		Total:    rawTotal + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: rawTotal,
	}, nil
}

// RollChance implements Roller.RollChance
func (r *randomRoller) RollChance(percent int) (bool, error) {
	if percent <= 0 {
		return false, nil
	}
	if percent >= 100 {
		return true, nil
	}

	result, err := r.Roll(1, 100, 0)
	if err != nil {
		return false, err
	}

	return result.Total <= percent, nil
}
