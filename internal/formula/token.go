package formula

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind tags a classified token
type Kind int

const (
	KindUnmatched Kind = iota
	KindDice
	KindModifier
	KindAliasRef
	KindNameRef
	KindDescription
	KindSign
)

func (k Kind) String() string {
	switch k {
	case KindDice:
		return "dice"
	case KindModifier:
		return "modifier"
	case KindAliasRef:
		return "alias_ref"
	case KindNameRef:
		return "name_ref"
	case KindDescription:
		return "description"
	case KindSign:
		return "sign"
	default:
		return "unmatched"
	}
}

// Token is one whitespace-separated fragment of a formula after classification
type Token struct {
	Kind Kind
	Raw  string

	// Count and Faces are set for KindDice
	Count int
	Faces int

	// Value is the unsigned magnitude for KindModifier and +1/-1 for KindSign
	Value int

	// Name is the reference text without its sigil, or the description
	Name string
}

// word is the alphabet allowed in references and descriptions: Latin and Cyrillic letters, '-' and '_'
const word = `A-Za-zА-Яа-яЁё_\-`

var (
	diceRe        = regexp.MustCompile(`^(\d{0,3})[dDдД](\d{1,3})$`)
	numberRe      = regexp.MustCompile(`^\d{1,3}$`)
	aliasRe       = regexp.MustCompile(`^\$([` + word + `]{2,7})$`)
	nameRe        = regexp.MustCompile(`^&([` + word + `]{2,25})$`)
	descriptionRe = regexp.MustCompile(`^[` + word + `]{3,25}$`)
)

type matcher struct {
	lastOnly bool
	match    func(raw string) (Token, bool)
}

// matchers run in priority order; the first match wins
var matchers = []matcher{
	{match: matchDice},
	{match: matchNumber},
	{match: matchReference(aliasRe, KindAliasRef)},
	{match: matchReference(nameRe, KindNameRef)},
	{match: matchDescription, lastOnly: true},
	{match: matchSign},
}

// Classify classifies a single raw token. last reports whether raw is the
// final token of its formula, which is the only position a description may take.
func Classify(raw string, last bool) Token {
	for _, m := range matchers {
		if m.lastOnly && !last {
			continue
		}
		if tok, ok := m.match(raw); ok {
			return tok
		}
	}
	return Token{Kind: KindUnmatched, Raw: raw}
}

// Tokenize splits formula on whitespace and classifies every token
func Tokenize(formula string) []Token {
	fields := strings.Fields(formula)
	tokens := make([]Token, 0, len(fields))
	for i, raw := range fields {
		tokens = append(tokens, Classify(raw, i == len(fields)-1))
	}
	return tokens
}

func matchDice(raw string) (Token, bool) {
	m := diceRe.FindStringSubmatch(raw)
	if m == nil {
		return Token{}, false
	}

	count := 1
	if m[1] != "" {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Token{}, false
		}
		count = n
	}

	// d0 has the shape of a die but nothing can be rolled on it
	faces, err := strconv.Atoi(m[2])
	if err != nil || faces < 1 {
		return Token{}, false
	}

	return Token{Kind: KindDice, Raw: raw, Count: count, Faces: faces}, true
}

func matchNumber(raw string) (Token, bool) {
	if !numberRe.MatchString(raw) {
		return Token{}, false
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return Token{}, false
	}
	return Token{Kind: KindModifier, Raw: raw, Value: n}, true
}

func matchReference(re *regexp.Regexp, kind Kind) func(string) (Token, bool) {
	return func(raw string) (Token, bool) {
		m := re.FindStringSubmatch(raw)
		if m == nil {
			return Token{}, false
		}
		return Token{Kind: kind, Raw: raw, Name: m[1]}, true
	}
}

func matchDescription(raw string) (Token, bool) {
	if !descriptionRe.MatchString(raw) {
		return Token{}, false
	}
	return Token{Kind: KindDescription, Raw: raw, Name: raw}, true
}

func matchSign(raw string) (Token, bool) {
	switch raw {
	case "+":
		return Token{Kind: KindSign, Raw: raw, Value: int(positive)}, true
	case "-":
		return Token{Kind: KindSign, Raw: raw, Value: int(negative)}, true
	}
	return Token{}, false
}

// IsValidAlias reports whether alias can be referenced as $alias in a formula
func IsValidAlias(alias string) bool {
	return aliasRe.MatchString("$" + alias)
}

// IsValidAttributeName reports whether name can be referenced as &name in a formula
func IsValidAttributeName(name string) bool {
	return nameRe.MatchString("&" + name)
}
