// Package templates provides the built-in roadmaps shipped with the binary.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/levelup/internal/roadmap"
)

//go:embed data/*.yaml
var builtin embed.FS

// ErrUnknownTemplate is returned when a template id is not in the library.
var ErrUnknownTemplate = errors.New("unknown template")

// Template is a named, pre-validated roadmap.
type Template struct {
	ID          string
	Name        string
	Description string
	Candidate   roadmap.Candidate
}

// templateFile is the on-disk shape of a template.
type templateFile struct {
	ID                string `yaml:"id"`
	Order             int    `yaml:"order"`
	roadmap.Candidate `yaml:",inline"`
}

// Library is an ordered, read-only set of templates.
type Library struct {
	templates []Template
	byID      map[string]int
}

// Builtin loads the templates embedded in the binary.
func Builtin() (*Library, error) {
	return Load(builtin, "data")
}

// MustBuiltin is like Builtin but panics on error. The embedded files are
// checked by tests, so a failure here is a build defect.
func MustBuiltin() *Library {
	lib, err := Builtin()
	if err != nil {
		panic(err)
	}
	return lib
}

// Load reads every *.yaml file in dir of fsys. Each template is run through
// roadmap.Import so a broken template is rejected here rather than when a
// user selects it.
func Load(fsys fs.FS, dir string) (*Library, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read template dir: %w", err)
	}

	var files []templateFile
	var errs []string
	seen := make(map[string]bool)

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}

		raw, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}

		var tf templateFile
		if err := yaml.Unmarshal(raw, &tf); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", e.Name(), err))
			continue
		}
		if tf.ID == "" {
			tf.ID = strings.TrimSuffix(e.Name(), ".yaml")
		}
		if seen[tf.ID] {
			errs = append(errs, fmt.Sprintf("%s: duplicate template id %q", e.Name(), tf.ID))
			continue
		}
		seen[tf.ID] = true

		if _, _, err := roadmap.Import(tf.Candidate); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", e.Name(), err))
			continue
		}
		files = append(files, tf)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("template validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found in %s", dir)
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].Order != files[j].Order {
			return files[i].Order < files[j].Order
		}
		return files[i].ID < files[j].ID
	})

	lib := &Library{byID: make(map[string]int, len(files))}
	for i, tf := range files {
		lib.templates = append(lib.templates, Template{
			ID:          tf.ID,
			Name:        tf.Name,
			Description: tf.Description,
			Candidate:   tf.Candidate,
		})
		lib.byID[tf.ID] = i
	}
	return lib, nil
}

// All returns the templates in display order.
func (l *Library) All() []Template {
	out := make([]Template, len(l.templates))
	copy(out, l.templates)
	return out
}

// Get returns the template with the given id.
func (l *Library) Get(id string) (Template, error) {
	i, ok := l.byID[id]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
	}
	return l.templates[i], nil
}

// Default returns the first template in display order.
func (l *Library) Default() Template {
	return l.templates[0]
}
