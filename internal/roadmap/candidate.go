package roadmap

// Candidate is an unvalidated roadmap as produced by a template file or the
// roadmap generator. Field names match the generator's JSON schema.
type Candidate struct {
	Name        string          `json:"name" yaml:"name" validate:"required"`
	Description string          `json:"description" yaml:"description"`
	Nodes       []CandidateNode `json:"nodes" yaml:"nodes" validate:"required,min=1,dive"`
	Edges       []CandidateEdge `json:"edges" yaml:"edges" validate:"dive"`
}

// CandidateNode is a node before import. Pointer fields distinguish a value
// that was left out from its zero value.
type CandidateNode struct {
	ID          string              `json:"id" yaml:"id" validate:"required"`
	Label       string              `json:"label" yaml:"label" validate:"required"`
	Description string              `json:"description" yaml:"description"`
	Status      string              `json:"status" yaml:"status" validate:"required,oneof=AVAILABLE LOCKED"`
	XPReward    *int                `json:"xpReward" yaml:"xpReward" validate:"required,min=0"`
	Level       *int                `json:"level" yaml:"level" validate:"required,min=1"`
	Position    *CandidatePosition  `json:"position" yaml:"position" validate:"required"`
	Resources   []CandidateResource `json:"resources,omitempty" yaml:"resources,omitempty" validate:"omitempty,dive"`
}

// CandidatePosition is the layout hint of a candidate node.
type CandidatePosition struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// CandidateResource is a learning link before import. A missing id is
// filled in on import.
type CandidateResource struct {
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
	Title string `json:"title" yaml:"title" validate:"required"`
	URL   string `json:"url" yaml:"url" validate:"required"`
	Type  string `json:"type" yaml:"type" validate:"required,oneof=article video course book"`
}

// CandidateEdge is a prerequisite link before import. A missing id is
// derived from its endpoints.
type CandidateEdge struct {
	ID     string `json:"id,omitempty" yaml:"id,omitempty"`
	Source string `json:"source" yaml:"source" validate:"required"`
	Target string `json:"target" yaml:"target" validate:"required"`
}
