package roadmapgen

import "github.com/abhisek/levelup/internal/llm"

// RoadmapSchema defines the JSON schema for generated roadmaps.
var RoadmapSchema = &llm.Schema{
	Name:        "skill-roadmap",
	Description: "A career roadmap laid out as a skill tree of nodes and prerequisite edges",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{
				"type":        "string",
				"description": "Short title of the roadmap",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "One sentence summary of the career path",
			},
			"nodes": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    nodeSchema,
			},
			"edges": map[string]any{
				"type":  "array",
				"items": edgeSchema,
			},
		},
		"required":             []any{"name", "description", "nodes", "edges"},
		"additionalProperties": false,
	},
}

var nodeSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":        "string",
			"description": "Unique node id, referenced by edges",
		},
		"label": map[string]any{
			"type": "string",
		},
		"description": map[string]any{
			"type": "string",
		},
		"status": map[string]any{
			"type":        "string",
			"enum":        []any{"AVAILABLE", "LOCKED"},
			"description": "AVAILABLE for level 1 foundation skills, LOCKED for everything else",
		},
		"xpReward": map[string]any{
			"type":    "integer",
			"minimum": 0,
			"maximum": 1000,
		},
		"level": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"description": "Tier of the skill, 1 for foundations",
		},
		"position": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"x": map[string]any{"type": "number"},
				"y": map[string]any{"type": "number"},
			},
			"required":             []any{"x", "y"},
			"additionalProperties": false,
		},
		"resources": map[string]any{
			"type":  "array",
			"items": resourceSchema,
		},
	},
	"required":             []any{"id", "label", "description", "status", "xpReward", "level", "position", "resources"},
	"additionalProperties": false,
}

var resourceSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":    map[string]any{"type": "string"},
		"title": map[string]any{"type": "string"},
		"url":   map[string]any{"type": "string"},
		"type": map[string]any{
			"type": "string",
			"enum": []any{"article", "video", "course", "book"},
		},
	},
	"required":             []any{"id", "title", "url", "type"},
	"additionalProperties": false,
}

var edgeSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{"type": "string"},
		"source": map[string]any{
			"type":        "string",
			"description": "Id of the prerequisite node",
		},
		"target": map[string]any{
			"type":        "string",
			"description": "Id of the node it unlocks",
		},
	},
	"required":             []any{"id", "source", "target"},
	"additionalProperties": false,
}
