package formula

import (
	"github.com/KirkDiggler/dnd-dice-bot/internal/dice"
)

// Identity is the chat user a roll is made for
type Identity struct {
	UserID      string
	DisplayName string
}

//go:generate mockgen -destination=mock/mock_character.go -package=mockformula -source=session.go ActiveCharacter

// ActiveCharacter is the character a user currently rolls as
type ActiveCharacter interface {
	AttributeResolver
	CharacterName() string
}

// Outcome is everything the presentation layer needs to show one roll
type Outcome struct {
	Notation    string
	Result      int
	Log         string
	Description string
	Modifiers   []int
	Attributes  []AttributeReference
	DisplayName string
}

// SessionConfig holds the inputs of one roll
type SessionConfig struct {
	Formula  string
	Identity Identity

	// Character is optional; without it every attribute reference stays unresolved
	Character ActiveCharacter

	// Roller defaults to dice.NewRandomRoller
	Roller dice.Roller
}

// Session evaluates one formula for one user. It is built per command and is
// not safe for concurrent use; only the roller may be shared between sessions.
type Session struct {
	formula   string
	identity  Identity
	character ActiveCharacter
	roller    dice.Roller

	parsed   bool
	hand     *Hand
	parseErr error
}

// NewSession creates a session; nothing is parsed until Hand or Roll is called
func NewSession(cfg *SessionConfig) *Session {
	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	return &Session{
		formula:   cfg.Formula,
		identity:  cfg.Identity,
		character: cfg.Character,
		roller:    roller,
	}
}

// Formula returns the raw formula of the session
func (s *Session) Formula() string {
	return s.formula
}

// Hand parses the formula on first call and returns the memoized result afterwards
func (s *Session) Hand() (*Hand, error) {
	if !s.parsed {
		var resolver AttributeResolver
		if s.character != nil {
			resolver = s.character
		}
		s.hand, s.parseErr = Parse(s.formula, resolver)
		s.parsed = true
	}
	return s.hand, s.parseErr
}

// Valid reports whether the formula holds at least one dice group
func (s *Session) Valid() bool {
	_, err := s.Hand()
	return err == nil
}

// DisplayName is the active character's name, or the user's display name without one
func (s *Session) DisplayName() string {
	if s.character != nil {
		if name := s.character.CharacterName(); name != "" {
			return name
		}
	}
	return s.identity.DisplayName
}

// Roll evaluates the hand. Dice are drawn once; later calls report the same numbers.
func (s *Session) Roll() (*Outcome, error) {
	hand, err := s.Hand()
	if err != nil {
		return nil, err
	}

	eval, err := Evaluate(hand, s.roller)
	if err != nil {
		return nil, err
	}

	return &Outcome{
		Notation:    hand.String(),
		Result:      eval.Result,
		Log:         eval.Log,
		Description: hand.Description,
		Modifiers:   hand.Modifiers,
		Attributes:  hand.Attributes,
		DisplayName: s.DisplayName(),
	}, nil
}
