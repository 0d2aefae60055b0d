package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

// Class is the part of a 5e class definition the bot rolls with
type Class struct {
	Key    string
	Name   string
	HitDie int
}

// Client looks up rules reference data from the D&D 5e API
type Client interface {
	ListClasses() ([]*Class, error)
	GetClass(key string) (*Class, error)
}
