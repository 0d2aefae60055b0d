package testutils

import "github.com/KirkDiggler/dnd-dice-bot/internal/entities"

// CreateTestCharacter creates a character with a typical spread of scores
// (Strength 8, Dexterity 15, Constitution 14) and a saved Stealth throw
func CreateTestCharacter(ownerID, name string) *entities.Character {
	char := &entities.Character{
		OwnerID: ownerID,
		Name:    name,
	}
	char.SetAttribute(entities.NewAttribute("Strength", "STR", 8))
	char.SetAttribute(entities.NewAttribute("Dexterity", "DEX", 15))
	char.SetAttribute(entities.NewAttribute("Constitution", "CON", 14))
	char.SaveThrow(&entities.Throw{Name: "Stealth", Formula: "d20 + $DEX Stealth"})
	return char
}

// CreateActiveTestCharacter is CreateTestCharacter marked as the owner's active character
func CreateActiveTestCharacter(ownerID, name string) *entities.Character {
	char := CreateTestCharacter(ownerID, name)
	char.Active = true
	return char
}
