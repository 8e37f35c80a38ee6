// SPDX-License-Identifier: MIT

package scenario

import "sort"

// Argument names as written in scenario files.
const (
	argFloor      = "floor"
	argWeight     = "weight"
	argHot        = "hot"
	argCold       = "cold"
	argBegin      = "begin"
	argEnd        = "end"
	argCenter     = "center"
	argRadius     = "radius"
	argStartAngle = "start_angle"
	argEndAngle   = "end_angle"
	argMana       = "mana"
	argLevel      = "level"
)

// Operation names as written in scenario files.
const (
	OpLoadCargo        = "load_cargo"
	OpUnloadCargo      = "unload_cargo"
	OpMoveToFloor      = "move_to_floor"
	OpCurrentFloor     = "current_floor"
	OpSetController    = "set_controller"
	OpWaterSpeed       = "water_speed"
	OpIsOpen           = "is_open"
	OpWaterTemperature = "water_temperature"
	OpDrawLine         = "draw_line"
	OpDrawArc          = "draw_arc"
	OpCastChance       = "cast_chance"
	OpDuration         = "duration"
	OpDescribe         = "describe"
)

// operations lists, per kind, each op and the arguments it requires.
var operations = map[Kind]map[string][]string{
	KindElevator: {
		OpLoadCargo:    {argFloor, argWeight},
		OpUnloadCargo:  {argFloor, argWeight},
		OpMoveToFloor:  {argFloor},
		OpCurrentFloor: nil,
	},
	KindMixer: {
		OpSetController:    {argHot, argCold},
		OpWaterSpeed:       nil,
		OpIsOpen:           nil,
		OpWaterTemperature: nil,
	},
	KindPen: {
		OpDrawLine: {argBegin, argEnd},
		OpDrawArc:  {argCenter, argRadius, argStartAngle, argEndAngle},
	},
	KindSpell: {
		OpCastChance: {argMana, argLevel},
		OpDuration:   {argLevel},
		OpDescribe:   nil,
	},
}

// Operations returns the sorted op names available for kind.
func Operations(kind Kind) []string {
	ops := make([]string, 0, len(operations[kind]))
	for op := range operations[kind] {
		ops = append(ops, op)
	}
	sort.Strings(ops)

	return ops
}

// has reports whether the named argument is set.
func (a Args) has(name string) bool {
	switch name {
	case argFloor:
		return a.Floor != nil
	case argWeight:
		return a.Weight != nil
	case argHot:
		return a.Hot != nil
	case argCold:
		return a.Cold != nil
	case argBegin:
		return a.Begin != nil
	case argEnd:
		return a.End != nil
	case argCenter:
		return a.Center != nil
	case argRadius:
		return a.Radius != nil
	case argStartAngle:
		return a.StartAngle != nil
	case argEndAngle:
		return a.EndAngle != nil
	case argMana:
		return a.Mana != nil
	case argLevel:
		return a.Level != nil
	}

	return false
}
