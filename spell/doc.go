// Package spell implements game-style spells as immutable value types.
//
// What:
//
//   - Spell carries a title, a description, a mana cost and the minimum
//     magic level needed to cast it.
//   - CastChance(mana, level) is the success percentage for a caster:
//     0 when the caster lacks level or mana, otherwise
//     20 + (level − minLevel)·10 + (level − manaCost), clamped to [0,100].
//   - Duration(level) is (level − minLevel)·0.5 seconds, and 0 for casters
//     below the minimum level.
//   - HealingSpell embeds Spell and only changes Duration: it is scaled by
//     20 / heals, so stronger heals last shorter.
//   - Both kinds satisfy Castable; String renders a three-line card and
//     GoString a constructor-like form.
//
// Difficulty tiers by minimum level: Basic (<10), Common (<25),
// Advanced (<50), Great.
//
// Errors (validation): ErrManaCost, ErrMinLevel, ErrHeals.
package spell
