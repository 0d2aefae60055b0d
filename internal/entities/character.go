package entities

import (
	"time"
)

// Character is a player character owned by a chat user. Its attributes feed
// $alias and &name references in dice formulas.
type Character struct {
	ID      string
	OwnerID string
	Name    string

	// Active marks the character the owner currently rolls as; at most one per owner
	Active bool

	Attributes []*Attribute
	Throws     []*Throw

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CharacterName returns the name of the character, empty for a nil character
func (c *Character) CharacterName() string {
	if c == nil {
		return ""
	}
	return c.Name
}

// AttributeByAlias returns the modifier and name of the attribute with the given alias.
// name is empty when no attribute matches.
func (c *Character) AttributeByAlias(alias string) (modifier *int, name string) {
	if c == nil || alias == "" {
		return nil, ""
	}

	for _, attr := range c.Attributes {
		if attr != nil && attr.Alias == alias {
			return attr.Modifier, attr.Name
		}
	}
	return nil, ""
}

// AttributeByName returns the modifier of the attribute with the given name
func (c *Character) AttributeByName(name string) *int {
	if attr := c.Attribute(name); attr != nil {
		return attr.Modifier
	}
	return nil
}

// Attribute returns the attribute with the given name, or nil
func (c *Character) Attribute(name string) *Attribute {
	if c == nil {
		return nil
	}

	for _, attr := range c.Attributes {
		if attr != nil && attr.Name == name {
			return attr
		}
	}
	return nil
}

// SetAttribute adds attr or replaces the attribute with the same name
func (c *Character) SetAttribute(attr *Attribute) {
	for i, existing := range c.Attributes {
		if existing != nil && existing.Name == attr.Name {
			c.Attributes[i] = attr
			return
		}
	}
	c.Attributes = append(c.Attributes, attr)
}

// Throw returns the saved formula with the given name, or nil
func (c *Character) Throw(name string) *Throw {
	if c == nil {
		return nil
	}

	for _, t := range c.Throws {
		if t != nil && t.Name == name {
			return t
		}
	}
	return nil
}

// SaveThrow adds throw or replaces the throw with the same name
func (c *Character) SaveThrow(throw *Throw) {
	for i, existing := range c.Throws {
		if existing != nil && existing.Name == throw.Name {
			c.Throws[i] = throw
			return
		}
	}
	c.Throws = append(c.Throws, throw)
}

// Clone returns a deep copy of the character
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	clone := *c
	if c.Attributes != nil {
		clone.Attributes = make([]*Attribute, len(c.Attributes))
		for i, attr := range c.Attributes {
			clone.Attributes[i] = attr.clone()
		}
	}
	if c.Throws != nil {
		clone.Throws = make([]*Throw, len(c.Throws))
		for i, t := range c.Throws {
			if t != nil {
				tc := *t
				clone.Throws[i] = &tc
			}
		}
	}
	return &clone
}
