package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// RollChance rolls d100 against a percent chance and reports success
	RollChance(percent int) (bool, error)
}

// RollResult holds the outcome of a dice roll
type RollResult struct {
	Total    int   // Sum of all rolls plus bonus
	Rolls    []int // Individual die results
	Bonus    int   // Flat bonus added to the raw total
	Count    int   // Number of dice rolled
	Sides    int   // Sides per die
	RawTotal int   // Total before the bonus
}
