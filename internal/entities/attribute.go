package entities

// Attribute is a named characteristic of a character, e.g. Dexterity 14 (+2)
type Attribute struct {
	Name  string `json:"name"`
	Alias string `json:"alias,omitempty"`
	Value int    `json:"value"`

	// Modifier is nil when the attribute contributes nothing to rolls
	Modifier *int `json:"modifier,omitempty"`
}

const (
	minScore = 1
	maxScore = 30
)

// ModifierForScore returns the ability modifier for a score on the 1-30 table.
// Scores off the table have no modifier.
func ModifierForScore(score int) int {
	if score < minScore || score > maxScore {
		return 0
	}

	diff := score - 10
	if diff < 0 {
		// round toward negative infinity, 9 -> -1
		return (diff - 1) / 2
	}
	return diff / 2
}

// NewAttribute creates an attribute with the modifier derived from value
func NewAttribute(name, alias string, value int) *Attribute {
	modifier := ModifierForScore(value)
	return &Attribute{
		Name:     name,
		Alias:    alias,
		Value:    value,
		Modifier: &modifier,
	}
}

func (a *Attribute) clone() *Attribute {
	if a == nil {
		return nil
	}

	c := *a
	if a.Modifier != nil {
		m := *a.Modifier
		c.Modifier = &m
	}
	return &c
}
