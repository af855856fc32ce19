// Package roadmap turns externally supplied node and edge sets into a
// validated skill tree.
package roadmap

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/abhisek/levelup/internal/profile"
	"github.com/abhisek/levelup/internal/skilltree"
)

// ErrMalformedRoadmap is returned when a candidate roadmap fails validation.
var ErrMalformedRoadmap = errors.New("malformed roadmap")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their wire names so messages line up with the
	// generator schema and the template files.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Import validates c and converts it into a graph plus a fresh profile.
// All problems are reported together in one error wrapping
// ErrMalformedRoadmap. Import has no side effects, so a failed import
// leaves whatever the caller currently holds untouched.
func Import(c Candidate) (skilltree.Graph, profile.Profile, error) {
	if errs := check(c); len(errs) > 0 {
		return skilltree.Graph{}, profile.Profile{}, fmt.Errorf("%w:\n  %s", ErrMalformedRoadmap, strings.Join(errs, "\n  "))
	}

	nodes := make([]skilltree.Node, 0, len(c.Nodes))
	for _, cn := range c.Nodes {
		nodes = append(nodes, toNode(cn))
	}

	edges := make([]skilltree.Edge, 0, len(c.Edges))
	for _, ce := range c.Edges {
		id := ce.ID
		if id == "" {
			id = fmt.Sprintf("e%s-%s", ce.Source, ce.Target)
		}
		edges = append(edges, skilltree.Edge{ID: id, Source: ce.Source, Target: ce.Target})
	}

	return skilltree.New(nodes, edges), profile.New(), nil
}

// check returns every problem found in c, struct-level first.
func check(c Candidate) []string {
	var errs []string

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return []string{err.Error()}
		}
		for _, fe := range verrs {
			errs = append(errs, formatFieldError(fe))
		}
	}

	ids := make(map[string]bool, len(c.Nodes))
	for _, n := range c.Nodes {
		if n.ID == "" {
			continue
		}
		if ids[n.ID] {
			errs = append(errs, fmt.Sprintf("duplicate node id: %q", n.ID))
		}
		ids[n.ID] = true
	}

	for i, e := range c.Edges {
		if e.Source != "" && !ids[e.Source] {
			errs = append(errs, fmt.Sprintf("edge %s references nonexistent source %q", edgeName(i, e), e.Source))
		}
		if e.Target != "" && !ids[e.Target] {
			errs = append(errs, fmt.Sprintf("edge %s references nonexistent target %q", edgeName(i, e), e.Target))
		}
	}

	return errs
}

func edgeName(i int, e CandidateEdge) string {
	if e.ID != "" {
		return fmt.Sprintf("%q", e.ID)
	}
	return fmt.Sprintf("#%d", i)
}

// formatFieldError renders one validator failure using the field's path,
// e.g. "nodes[2].status must be one of: AVAILABLE LOCKED".
func formatFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s (got %q)", field, fe.Param(), fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func toNode(cn CandidateNode) skilltree.Node {
	resources := make([]skilltree.Resource, 0, len(cn.Resources))
	for _, r := range cn.Resources {
		id := r.ID
		if id == "" {
			id = uuid.NewString()
		}
		resources = append(resources, skilltree.Resource{
			ID:    id,
			Title: r.Title,
			URL:   r.URL,
			Type:  skilltree.ResourceType(r.Type),
		})
	}

	return skilltree.Node{
		ID:          cn.ID,
		Label:       cn.Label,
		Description: cn.Description,
		Status:      skilltree.Status(cn.Status),
		XPReward:    *cn.XPReward,
		Level:       *cn.Level,
		Position:    skilltree.Position{X: cn.Position.X, Y: cn.Position.Y},
		Resources:   resources,
	}
}
