package domain

import "encoding/json"

// RoleGeneral is the sentinel role used when a person has no primary role assigned.
const RoleGeneral = "GENERAL"

// CategoryGeneral marks menu items served to roles without explicit menu mappings.
const CategoryGeneral = "general"

// MenuItem is a named, ordered, typed action exposed to an authorized caller.
type MenuItem struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`
	Kind  string `json:"kind"`
	// Payload is the item's structured data, nil when the stored text is empty or
	// malformed. Malformed payloads are tolerated, never an error.
	Payload   map[string]any `json:"payload"`
	SortOrder int            `json:"-"`
}

// ParsePayload decodes the stored payload text into structured data.
// Empty or malformed text yields nil.
func ParsePayload(raw string) map[string]any {
	if raw == "" {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil
	}
	return m
}
