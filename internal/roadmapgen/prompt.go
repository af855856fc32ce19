package roadmapgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You design career roadmaps as gamified skill trees.

Rules:
- Start with foundational skills and branch out to specialized skills.
- Every edge points from a prerequisite (source) to the skill it unlocks (target). Edges must only reference node ids you defined.
- Assign XP rewards between 100 and 1000 based on complexity.
- Suggest 2-3 learning resources for each skill with real, well known URLs.
- Provide layout positions (x, y) starting from y=0 and moving downwards as the level increases.
- Only use these status values: AVAILABLE for level 1 foundation skills, LOCKED for everything else.`

// buildUserMessage constructs the user message for a career.
func buildUserMessage(career string, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Career: %s\n", career)
	fmt.Fprintf(&b, "Generate a detailed career roadmap for a %q.\n", career)
	b.WriteString("Format it as a skill tree with nodes and edges.\n")
	fmt.Fprintf(&b, "Include %d-%d nodes.", cfg.MinNodes, cfg.MaxNodes)

	return b.String()
}
