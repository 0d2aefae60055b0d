package entities

// Throw is a formula saved under a name, e.g. "Stealth" -> "1d20 + $DEX"
type Throw struct {
	Name    string `json:"name"`
	Formula string `json:"formula"`
}
