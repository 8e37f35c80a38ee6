// SPDX-License-Identifier: MIT

package spell

import "fmt"

// Spell is the base spell. All fields are fixed at construction.
type Spell struct {
	title       string
	description string
	manaCost    int
	minLevel    int
}

var (
	_ Castable = Spell{}
	_ Castable = HealingSpell{}
)

// New constructs a Spell.
func New(title, description string, manaCost, minLevel int) (Spell, error) {
	if manaCost < 0 {
		return Spell{}, fmt.Errorf("%w: got %d", ErrManaCost, manaCost)
	}
	if minLevel < 0 {
		return Spell{}, fmt.Errorf("%w: got %d", ErrMinLevel, minLevel)
	}

	return Spell{
		title:       title,
		description: description,
		manaCost:    manaCost,
		minLevel:    minLevel,
	}, nil
}

func (s Spell) Title() string       { return s.title }
func (s Spell) Description() string { return s.description }
func (s Spell) ManaCost() int       { return s.manaCost }
func (s Spell) MinLevel() int       { return s.minLevel }
func (s Spell) Tier() Tier          { return TierFor(s.minLevel) }

// CastChance returns the success percentage, in [0, MaxChance], for a
// caster with the given mana reserve and magic level.
func (s Spell) CastChance(mana, level int) int {
	if level < s.minLevel || mana < s.manaCost {
		return 0
	}
	chance := BaseChance + (level-s.minLevel)*LevelBonus + (level-s.manaCost)*ManaBonus
	switch {
	case chance > MaxChance:
		return MaxChance
	case chance < 0:
		return 0
	}

	return chance
}

// Duration returns how long the effect lasts, in seconds, when cast by a
// caster of the given level.
func (s Spell) Duration(level int) float64 {
	if level < s.minLevel {
		return 0
	}

	return float64(level-s.minLevel) * DurationPerLvl
}

// String renders the spell card:
//
//	<Tier> spell '<title>'
//	<description>
//	Cost: <mana>
func (s Spell) String() string {
	return fmt.Sprintf("%s spell '%s'\n%s\nCost: %d", s.Tier(), s.title, s.description, s.manaCost)
}

// GoString renders the spell in constructor form for %#v.
func (s Spell) GoString() string {
	return "Spell(" + s.fields() + ")"
}

func (s Spell) fields() string {
	return fmt.Sprintf("title=%q, description=%q, manaCost=%d, minLevel=%d",
		s.title, s.description, s.manaCost, s.minLevel)
}

// HealingSpell is a Spell whose duration shrinks as its heal amount grows.
type HealingSpell struct {
	Spell
	heals int
}

// NewHealing constructs a HealingSpell restoring heals health points.
func NewHealing(title, description string, manaCost, minLevel, heals int) (HealingSpell, error) {
	base, err := New(title, description, manaCost, minLevel)
	if err != nil {
		return HealingSpell{}, err
	}
	if heals <= 0 {
		return HealingSpell{}, fmt.Errorf("%w: got %d", ErrHeals, heals)
	}

	return HealingSpell{Spell: base, heals: heals}, nil
}

// Heals returns the health points restored per cast.
func (h HealingSpell) Heals() int { return h.heals }

// Duration scales the base duration by HealingBaseline / heals.
func (h HealingSpell) Duration(level int) float64 {
	return h.Spell.Duration(level) * (HealingBaseline / float64(h.heals))
}

// GoString renders the healing spell in constructor form for %#v.
func (h HealingSpell) GoString() string {
	return fmt.Sprintf("HealingSpell(%s, heals=%d)", h.fields(), h.heals)
}
