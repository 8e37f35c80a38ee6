// Package scenario replays example checks against the labkit objects.
//
// A scenario is a YAML document that declares named objects and an ordered
// list of steps. Each step calls one operation on one object and states
// what it expects: a value, an error kind, or plain success.
//
//	name: cargo-lift
//	elevators:
//	  - id: cargo
//	    floors: 3
//	    max_weight: 2000
//	    speed: 0.1
//	steps:
//	  - target: cargo
//	    op: move_to_floor
//	    args: {floor: 3}
//	    expect: {value: 20.0}
//
// Operations by object kind:
//
//	elevator  load_cargo(floor, weight)  unload_cargo(floor, weight)
//	          move_to_floor(floor)       current_floor()
//	mixer     set_controller(hot, cold)  water_speed()  is_open()
//	          water_temperature()
//	pen       draw_line(begin, end)      draw_arc(center, radius, start_angle, end_angle)
//	spell     cast_chance(mana, level)   duration(level)  describe()
//
// Angles may be written as numbers or as pi, -pi, pi/N, -pi/N.
//
// Parse and Load reject unknown keys, structurally invalid documents
// (go-playground/validator tags) and dangling references; all such errors
// wrap ErrInvalidFile. Run builds every object, replays the steps and
// returns a Report. A step failure is not a Run error; a construction
// failure is.
//
// Numeric expectations match within a relative tolerance of 1e-9.
package scenario
