package roadmapgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response. A full tree with
	// resources is a few kilobytes of JSON.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MinNodes and MaxNodes bound the tree size requested in the prompt.
	MinNodes int
	MaxNodes int
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.7,
		MinNodes:    8,
		MaxNodes:    12,
	}
}
