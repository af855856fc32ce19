package skilltree

// Status is a node's position in the progression state machine.
type Status string

const (
	StatusLocked     Status = "LOCKED"
	StatusAvailable  Status = "AVAILABLE"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// AllStatuses returns every status in progression order.
func AllStatuses() []Status {
	return []Status{StatusLocked, StatusAvailable, StatusInProgress, StatusCompleted}
}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusLocked, StatusAvailable, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Icon returns the display icon for a status.
func (s Status) Icon() string {
	switch s {
	case StatusLocked:
		return "🔒"
	case StatusAvailable:
		return "🔓"
	case StatusInProgress:
		return "📖"
	case StatusCompleted:
		return "✅"
	default:
		return "?"
	}
}

// Label returns the display label for a status.
func (s Status) Label() string {
	switch s {
	case StatusLocked:
		return "Locked"
	case StatusAvailable:
		return "Available"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// ResourceType classifies a learning resource.
type ResourceType string

const (
	ResourceArticle ResourceType = "article"
	ResourceVideo   ResourceType = "video"
	ResourceCourse  ResourceType = "course"
	ResourceBook    ResourceType = "book"
)

// Resource is an external learning link attached to a node.
type Resource struct {
	ID    string
	Title string
	URL   string
	Type  ResourceType
}

// Position is the layout hint carried over from the roadmap source.
// Y grows downward.
type Position struct {
	X float64
	Y float64
}

// Node is a single skill in the tree.
type Node struct {
	ID          string
	Label       string
	Description string
	Status      Status
	XPReward    int
	Level       int
	Position    Position
	Resources   []Resource

	// Rewarded is set the first time the node reaches COMPLETED so the
	// reward is never granted twice for the same graph instance.
	Rewarded bool
}

// clone returns a copy of n that shares no slices with it.
func (n Node) clone() Node {
	if n.Resources != nil {
		res := make([]Resource, len(n.Resources))
		copy(res, n.Resources)
		n.Resources = res
	}
	return n
}

// Edge states that Target requires Source.
type Edge struct {
	ID     string
	Source string
	Target string
}
