package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls count dice with the given sides and adds a bonus.
	// A count of zero rolls nothing and returns the bonus as the total.
	Roll(count, sides, bonus int) (*RollResult, error)
}
