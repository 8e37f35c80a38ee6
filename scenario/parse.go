// SPDX-License-Identifier: MIT

package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is shared; validator.Validate caches struct metadata and is
// safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and parses the scenario file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes a single scenario document and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidFile)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks struct tags, then cross references: unique object ids,
// known step targets, ops valid for the target kind, required arguments
// present, and at most one of expect.value / expect.error.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidFile, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	kinds, err := f.index()
	if err != nil {
		return err
	}

	var errs []error
	for i, st := range f.Steps {
		kind, ok := kinds[st.Target]
		if !ok {
			errs = append(errs, fmt.Errorf("step %d: unknown target %q", i+1, st.Target))
			continue
		}
		required, ok := operations[kind][st.Op]
		if !ok {
			errs = append(errs, fmt.Errorf("step %d: %s %q has no op %q (have %s)",
				i+1, kind, st.Target, st.Op, strings.Join(Operations(kind), ", ")))
			continue
		}
		for _, name := range required {
			if !st.Args.has(name) {
				errs = append(errs, fmt.Errorf("step %d: %s needs argument %q", i+1, st.Op, name))
			}
		}
		if st.Expect.Value != nil && st.Expect.Error != "" {
			errs = append(errs, fmt.Errorf("step %d: expect.value and expect.error are exclusive", i+1))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidFile, errors.Join(errs...))
	}

	return nil
}

// index maps every declared id to its kind, rejecting duplicates.
func (f *File) index() (map[string]Kind, error) {
	kinds := make(map[string]Kind)
	add := func(id string, k Kind) error {
		if prev, dup := kinds[id]; dup {
			return fmt.Errorf("%w: id %q declared as %s and %s", ErrInvalidFile, id, prev, k)
		}
		kinds[id] = k
		return nil
	}
	for _, e := range f.Elevators {
		if err := add(e.ID, KindElevator); err != nil {
			return nil, err
		}
	}
	for _, m := range f.Mixers {
		if err := add(m.ID, KindMixer); err != nil {
			return nil, err
		}
	}
	for _, p := range f.Pens {
		if err := add(p.ID, KindPen); err != nil {
			return nil, err
		}
	}
	for _, s := range f.Spells {
		if err := add(s.ID, KindSpell); err != nil {
			return nil, err
		}
	}

	return kinds, nil
}
