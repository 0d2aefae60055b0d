// Package uuid wraps ID generation so repositories can be tested with fixed IDs
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator creates identifiers for new records
type Generator interface {
	New() string
}

type randomGenerator struct{}

// NewGoogleUUIDGenerator returns a Generator producing random (v4) UUID strings
func NewGoogleUUIDGenerator() Generator {
	return randomGenerator{}
}

func (randomGenerator) New() string {
	return uuid.NewString()
}
