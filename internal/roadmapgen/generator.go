// Package roadmapgen asks an LLM for a career skill tree and decodes the
// answer into a roadmap candidate.
package roadmapgen

import (
	"context"
	"errors"

	"github.com/abhisek/levelup/internal/roadmap"
)

var (
	// ErrEmptyCareer is returned when the career text is blank.
	ErrEmptyCareer = errors.New("career must not be empty")

	// ErrGenerationFailed wraps every failure to obtain a usable response.
	ErrGenerationFailed = errors.New("failed to generate roadmap, please try again")
)

// Generator produces candidate roadmaps for a career.
type Generator interface {
	// Generate returns an unvalidated candidate. Callers run it through
	// roadmap.Import before using it.
	Generate(ctx context.Context, career string) (*roadmap.Candidate, error)
}
