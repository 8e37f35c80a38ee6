// SPDX-License-Identifier: MIT

package scenario

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed examples/*.yaml
var exampleFS embed.FS

// Examples parses the bundled scenarios that reproduce the original lab
// examples, sorted by file name.
func Examples() ([]*File, error) {
	names, err := fs.Glob(exampleFS, "examples/*.yaml")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	files := make([]*File, 0, len(names))
	for _, name := range names {
		data, err := exampleFS.ReadFile(name)
		if err != nil {
			return nil, err
		}
		f, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(name), err)
		}
		files = append(files, f)
	}

	return files, nil
}
