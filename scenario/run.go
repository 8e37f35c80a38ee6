// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/labkit/elevator"
	"github.com/katalvlaran/labkit/mixer"
	"github.com/katalvlaran/labkit/pen"
	"github.com/katalvlaran/labkit/simerr"
	"github.com/katalvlaran/labkit/spell"
)

// Tolerance is the relative tolerance for numeric expectations.
const Tolerance = 1e-9

// RunOption customizes Run.
type RunOption func(*runConfig)

type runConfig struct {
	log      *zap.Logger
	failFast bool
}

// WithLogger sets the logger for the run and the objects it builds.
// Panics on nil.
func WithLogger(l *zap.Logger) RunOption {
	if l == nil {
		panic("scenario: WithLogger(nil)")
	}
	return func(c *runConfig) {
		c.log = l
	}
}

// WithFailFast stops the run at the first failing step; the remaining
// steps are counted as skipped.
func WithFailFast() RunOption {
	return func(c *runConfig) {
		c.failFast = true
	}
}

// world holds the objects built for one run, keyed by id.
type world struct {
	elevators map[string]*elevator.Elevator
	mixers    map[string]*mixer.WaterMixer
	pens      map[string]*pen.Pen
	spells    map[string]spell.Castable
}

// Run builds the declared objects and replays the steps in order.
// It returns an error only when f is invalid or an object cannot be built.
func Run(f *File, opts ...RunOption) (*Report, error) {
	cfg := runConfig{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	rep := &Report{RunID: uuid.New(), Name: f.Name}
	log := cfg.log.With(zap.String("scenario", f.Name), zap.String("run_id", rep.RunID.String()))

	w, err := build(f, log)
	if err != nil {
		return nil, err
	}
	log.Info("scenario started", zap.Int("steps", len(f.Steps)))

	for i, st := range f.Steps {
		res := w.exec(i+1, st)
		rep.Results = append(rep.Results, res)
		if res.Passed {
			log.Debug("step passed", zap.Int("step", res.Index), zap.String("op", st.Op))
			continue
		}
		log.Warn("step failed",
			zap.Int("step", res.Index),
			zap.String("target", st.Target),
			zap.String("op", st.Op),
			zap.String("reason", res.Reason))
		if cfg.failFast {
			rep.Skipped = len(f.Steps) - i - 1
			break
		}
	}
	log.Info("scenario finished", zap.String("summary", rep.Summary()))

	return rep, nil
}

func build(f *File, log *zap.Logger) (*world, error) {
	w := &world{
		elevators: make(map[string]*elevator.Elevator, len(f.Elevators)),
		mixers:    make(map[string]*mixer.WaterMixer, len(f.Mixers)),
		pens:      make(map[string]*pen.Pen, len(f.Pens)),
		spells:    make(map[string]spell.Castable, len(f.Spells)),
	}
	objLog := func(id string) *zap.Logger { return log.With(zap.String("object", id)) }

	for _, d := range f.Elevators {
		e, err := elevator.New(d.Floors, d.MaxWeight, d.Speed, elevator.WithLogger(objLog(d.ID)))
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrBuild, d.ID, err)
		}
		w.elevators[d.ID] = e
	}
	for _, d := range f.Mixers {
		m, err := mixer.New(d.HotTemperature, d.HotSpeed, d.ColdTemperature, d.ColdSpeed,
			mixer.WithLogger(objLog(d.ID)))
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrBuild, d.ID, err)
		}
		w.mixers[d.ID] = m
	}
	for _, d := range f.Pens {
		p, err := pen.New(d.Thickness, d.Color, pen.WithLogger(objLog(d.ID)))
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrBuild, d.ID, err)
		}
		w.pens[d.ID] = p
	}
	for _, d := range f.Spells {
		var (
			s   spell.Castable
			err error
		)
		if d.Heals != nil {
			s, err = spell.NewHealing(d.Title, d.Description, d.ManaCost, d.MinLevel, *d.Heals)
		} else {
			s, err = spell.New(d.Title, d.Description, d.ManaCost, d.MinLevel)
		}
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrBuild, d.ID, err)
		}
		w.spells[d.ID] = s
	}

	return w, nil
}

// exec runs one step and grades it.
func (w *world) exec(index int, st Step) StepResult {
	res := StepResult{Index: index, Target: st.Target, Op: st.Op}
	res.Got, res.Err = w.call(st)

	switch want := st.Expect; {
	case want.Error != "":
		got := simerr.KindOf(res.Err)
		res.Passed = got == want.Error
		if !res.Passed {
			res.Reason = fmt.Sprintf("want %s error, got %s", want.Error, describeOutcome(res))
		}
	case res.Err != nil:
		res.Reason = fmt.Sprintf("unexpected error: %v", res.Err)
	case want.Value != nil:
		res.Passed = matches(res.Got, want.Value)
		if !res.Passed {
			res.Reason = fmt.Sprintf("want %v, got %v", want.Value, res.Got)
		}
	default:
		res.Passed = true
	}

	return res
}

func describeOutcome(res StepResult) string {
	if res.Err == nil {
		return fmt.Sprintf("success (%v)", res.Got)
	}
	if k := simerr.KindOf(res.Err); k != "" {
		return fmt.Sprintf("%s error: %v", k, res.Err)
	}

	return res.Err.Error()
}

// call dispatches a step to its object. Validate guarantees the target
// exists, the op belongs to its kind and required args are set.
func (w *world) call(st Step) (interface{}, error) {
	a := st.Args
	if e, ok := w.elevators[st.Target]; ok {
		switch st.Op {
		case OpLoadCargo:
			return e.LoadCargo(*a.Floor, *a.Weight)
		case OpUnloadCargo:
			return e.UnloadCargo(*a.Floor, *a.Weight)
		case OpMoveToFloor:
			return e.MoveToFloor(*a.Floor)
		case OpCurrentFloor:
			return e.CurrentFloor(), nil
		}
	}
	if m, ok := w.mixers[st.Target]; ok {
		switch st.Op {
		case OpSetController:
			return nil, m.SetController(*a.Hot, *a.Cold)
		case OpWaterSpeed:
			return m.WaterSpeed(), nil
		case OpIsOpen:
			return m.IsOpen(), nil
		case OpWaterTemperature:
			return m.WaterTemperature()
		}
	}
	if p, ok := w.pens[st.Target]; ok {
		switch st.Op {
		case OpDrawLine:
			return nil, p.DrawStraightLine(penPoint(*a.Begin), penPoint(*a.End))
		case OpDrawArc:
			return nil, p.DrawArc(penPoint(*a.Center), *a.Radius, float64(*a.StartAngle), float64(*a.EndAngle))
		}
	}
	if s, ok := w.spells[st.Target]; ok {
		switch st.Op {
		case OpCastChance:
			return s.CastChance(*a.Mana, *a.Level), nil
		case OpDuration:
			return s.Duration(*a.Level), nil
		case OpDescribe:
			return s.String(), nil
		}
	}

	return nil, errors.New("scenario: no such operation")
}

func penPoint(p Point) pen.Point { return pen.Point{X: p.X, Y: p.Y} }

// matches compares an operation result with a YAML-decoded expectation.
func matches(got, want interface{}) bool {
	if wf, ok := toFloat(want); ok {
		gf, ok := toFloat(got)
		if !ok {
			return false
		}
		return math.Abs(gf-wf) <= Tolerance*math.Max(1, math.Abs(wf))
	}
	switch wv := want.(type) {
	case bool:
		gv, ok := got.(bool)
		return ok && gv == wv
	case string:
		gv, ok := got.(string)
		return ok && gv == wv
	}

	return false
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float64:
		return n, true
	}

	return 0, false
}
