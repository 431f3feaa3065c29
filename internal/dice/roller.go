package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller rolls dice. Handlers take one so tests can fix the outcome.
type Roller interface {
	// Roll rolls count dice with the given sides and adds bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

type RollResult struct {
	Total int
	Rolls []int
	Bonus int
}

// RollInitiative rolls 1d20 plus bonus
func RollInitiative(r Roller, bonus int) (int, error) {
	result, err := r.Roll(1, 20, bonus)
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}
