// SPDX-License-Identifier: MIT

package spell

import (
	"fmt"

	"github.com/katalvlaran/labkit/simerr"
)

// Sentinel errors for spell construction.
var (
	// ErrManaCost indicates a negative mana cost.
	ErrManaCost = simerr.Kind("spell", simerr.ErrValidation, "mana cost must not be negative")
	// ErrMinLevel indicates a negative minimum level.
	ErrMinLevel = simerr.Kind("spell", simerr.ErrValidation, "minimum level must not be negative")
	// ErrHeals indicates a heal amount that is not positive.
	ErrHeals = simerr.Kind("spell", simerr.ErrValidation, "heal amount must be positive")
)

// Formula constants.
const (
	BaseChance      = 20   // chance for a caster exactly at the minimum level and mana cost
	LevelBonus      = 10   // per level above the minimum
	ManaBonus       = 1    // per level above the mana cost
	MaxChance       = 100  // percent
	DurationPerLvl  = 0.5  // seconds per level above the minimum
	HealingBaseline = 20.0 // heal amount with unscaled duration
)

// Castable is implemented by every spell kind.
type Castable interface {
	fmt.Stringer
	Title() string
	Description() string
	ManaCost() int
	MinLevel() int
	Tier() Tier
	CastChance(mana, level int) int
	Duration(level int) float64
}

// Tier is the difficulty class derived from the minimum level.
type Tier int

const (
	Basic Tier = iota
	Common
	Advanced
	Great
)

// TierFor classifies a minimum level.
func TierFor(minLevel int) Tier {
	switch {
	case minLevel < 10:
		return Basic
	case minLevel < 25:
		return Common
	case minLevel < 50:
		return Advanced
	default:
		return Great
	}
}

func (t Tier) String() string {
	switch t {
	case Basic:
		return "Basic"
	case Common:
		return "Common"
	case Advanced:
		return "Advanced"
	case Great:
		return "Great"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}
