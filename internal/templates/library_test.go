package templates

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/abhisek/levelup/internal/roadmap"
	"github.com/abhisek/levelup/internal/skilltree"
)

func TestBuiltinTemplatesAreValid(t *testing.T) {
	lib, err := Builtin()
	if err != nil {
		t.Fatalf("builtin templates failed to load: %v", err)
	}

	all := lib.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 templates, got %d", len(all))
	}
	if all[0].ID != "frontend-dev" || all[1].ID != "data-scientist" {
		t.Errorf("unexpected order: %s, %s", all[0].ID, all[1].ID)
	}
	if lib.Default().ID != "frontend-dev" {
		t.Errorf("default = %s, want frontend-dev", lib.Default().ID)
	}
}

func TestFrontendTemplateShape(t *testing.T) {
	tpl, err := MustBuiltin().Get("frontend-dev")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tpl.Name != "Frontend Architect" {
		t.Errorf("name = %q", tpl.Name)
	}

	g, _, err := roadmap.Import(tpl.Candidate)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if g.Len() != 4 || len(g.Edges()) != 4 {
		t.Fatalf("expected 4 nodes and 4 edges, got %d and %d", g.Len(), len(g.Edges()))
	}

	root, _ := g.GetNode("1")
	if root.Status != skilltree.StatusAvailable {
		t.Errorf("root status = %s", root.Status)
	}
	if len(root.Resources) != 2 || root.Resources[1].Type != skilltree.ResourceCourse {
		t.Errorf("unexpected resources: %+v", root.Resources)
	}

	react, _ := g.GetNode("4")
	if react.XPReward != 500 || react.Level != 3 {
		t.Errorf("react node = %+v", react)
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := MustBuiltin().Get("astronaut")
	if !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestLoadRejectsInvalidTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"t/bad.yaml": &fstest.MapFile{Data: []byte(`
id: bad
name: Bad
nodes:
  - id: a
    label: A
    status: COMPLETED
    xpReward: 10
    level: 1
    position: {x: 0, y: 0}
edges:
  - {source: a, target: b}
`)},
	}

	_, err := Load(fsys, "t")
	if err == nil {
		t.Fatal("expected error for invalid template")
	}
	if !strings.Contains(err.Error(), "bad.yaml: malformed roadmap") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadRejectsDuplicateIDs(t *testing.T) {
	doc := []byte(`
id: same
name: Same
nodes:
  - {id: a, label: A, status: AVAILABLE, xpReward: 10, level: 1, position: {x: 0, y: 0}}
`)
	fsys := fstest.MapFS{
		"t/one.yaml": &fstest.MapFile{Data: doc},
		"t/two.yaml": &fstest.MapFile{Data: doc},
	}

	if _, err := Load(fsys, "t"); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestLoadDerivesIDFromFilename(t *testing.T) {
	fsys := fstest.MapFS{
		"t/chef.yaml": &fstest.MapFile{Data: []byte(`
name: Chef
nodes:
  - {id: knife, label: Knife Skills, status: AVAILABLE, xpReward: 100, level: 1, position: {x: 0, y: 0}}
`)},
	}

	lib, err := Load(fsys, "t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := lib.Get("chef"); err != nil {
		t.Errorf("expected template id derived from file name: %v", err)
	}
}
