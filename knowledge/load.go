package knowledge

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a knowledge base from a JSON or YAML file, dispatching on the
// file extension. The file holds an array of entries. A missing or empty file
// is not an error; it yields an empty base so the engine degrades to
// always-unresolved instead of crashing.
func Load(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Empty(), nil
		}
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return Empty(), nil
	}

	var entries []Entry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parse knowledge base %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parse knowledge base %s: %w", path, err)
		}
	}

	normalizeCourseIDs(entries)

	return New(entries...)
}

// normalizeCourseIDs back-fills CourseInfo.ID from the map key when the
// authored file omits the redundant id field inside the course object.
func normalizeCourseIDs(entries []Entry) {
	for _, e := range entries {
		for id, c := range e.Courses {
			if c.ID == "" {
				c.ID = id
				e.Courses[id] = c
			}
		}
	}
}
