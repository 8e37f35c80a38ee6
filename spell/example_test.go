package spell_test

import (
	"fmt"

	"github.com/katalvlaran/labkit/spell"
)

// ExampleSpell_String prints the card of a basic fire spell.
func ExampleSpell_String() {
	fireball, _ := spell.New("Fireball", "Widely available fire magic known since time immemorial", 10, 3)
	fmt.Println(fireball)
	// Output:
	// Basic spell 'Fireball'
	// Widely available fire magic known since time immemorial
	// Cost: 10
}

// ExampleHealingSpell_Duration compares a minor heal with a strong
// regeneration cast by the same level-40 caster.
func ExampleHealingSpell_Duration() {
	minor, _ := spell.NewHealing("Minor healing", "Travelling spell of clerics", 1, 3, 2)
	strong, _ := spell.NewHealing("Strong regeneration", "Born on battlefields", 10, 30, 20)

	fmt.Println(minor.Duration(40))
	fmt.Println(strong.Duration(40))
	// Output:
	// 185
	// 5
}
