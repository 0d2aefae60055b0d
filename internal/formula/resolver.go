package formula

// AttributeResolver looks up attribute modifiers of one character.
// Lookups are read-only, case-sensitive exact matches and return nil
// rather than an error when nothing matches.
type AttributeResolver interface {
	// AttributeByAlias returns the modifier and canonical name of the
	// attribute with the given alias. name is empty when no attribute matches.
	AttributeByAlias(alias string) (modifier *int, name string)

	// AttributeByName returns the modifier of the attribute with the given name
	AttributeByName(name string) *int
}

// AttributeReference is a resolved $alias or &name fragment.
// Modifier is nil when the attribute could not be resolved or carries no
// modifier; Label is then the text the user typed.
type AttributeReference struct {
	Modifier *int
	Label    string
}

// Value is the contribution of the reference to a total
func (a AttributeReference) Value() int {
	if a.Modifier == nil {
		return 0
	}
	return *a.Modifier
}

// Resolved reports whether the reference carries a modifier
func (a AttributeReference) Resolved() bool {
	return a.Modifier != nil
}

func resolveAlias(resolver AttributeResolver, alias string) AttributeReference {
	if resolver == nil {
		return AttributeReference{Label: alias}
	}

	modifier, name := resolver.AttributeByAlias(alias)
	if name == "" {
		return AttributeReference{Label: alias}
	}
	return AttributeReference{Modifier: modifier, Label: name}
}

func resolveName(resolver AttributeResolver, name string) AttributeReference {
	if resolver == nil {
		return AttributeReference{Label: name}
	}
	return AttributeReference{Modifier: resolver.AttributeByName(name), Label: name}
}
