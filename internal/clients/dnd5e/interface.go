package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

// Client looks up monsters in the public D&D 5e API
type Client interface {
	GetMonster(key string) (*Monster, error)
}
