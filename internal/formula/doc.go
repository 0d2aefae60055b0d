// Package formula interprets free-text dice formulas such as
// "2d20 + d6 + &Dexterity - 2 Dexterity_roll".
//
// A formula is split on whitespace and every token is classified, in a fixed
// priority order, as a dice group, a numeric modifier, an attribute reference
// ($alias or &name), a trailing description or an arithmetic sign. Tokens that
// match nothing are ignored. The result is a Hand, which the evaluator rolls
// and renders into a Discord-markdown log.
//
// A Session ties one formula to one acting user and their active character.
// Parsing and rolling are memoized: reading the hand or the dice results a
// second time never re-parses, re-resolves or re-rolls.
package formula
