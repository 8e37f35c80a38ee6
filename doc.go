// Package labkit is a set of small simulated objects with strict input
// validation, plus a scenario runner that replays example checks against
// them.
//
// What is inside:
//
//	elevator/  — a cargo elevator: load, unload, move, travel time
//	pen/       — a drawing pen whose strokes are validated, not rendered
//	mixer/     — a hot/cold water mixer: outlet speed and temperature
//	spell/     — spells and healing spells: cast chance, duration, cards
//	simerr/    — the two error kinds every object reports
//	scenario/  — YAML example checks: parse, validate, run, report
//	cmd/labsim — command-line front end for scenario
//
// The objects are independent of each other. Each one is built by a
// validating constructor (New), keeps its configuration immutable, and
// fails with an error that wraps either simerr.ErrValidation (bad
// argument) or simerr.ErrState (operation not allowed right now):
//
//	lift, _ := elevator.New(3, 2000, 0.1)
//	secs, _ := lift.MoveToFloor(3) // 20
//
//	_, err := lift.LoadCargo(1, 50)
//	errors.Is(err, elevator.ErrWrongFloor) // true
//	errors.Is(err, simerr.ErrState)        // true
//
// None of the objects are safe for concurrent mutation; each is meant to
// have a single owner.
package labkit
