package knowledge

import (
	"fmt"
	"sort"

	"github.com/hupe1980/dialogmesh/core"
)

// Entry is one intent of the knowledge base: canonical trigger phrases used
// as similarity anchors, one or more response templates, an optional media
// reference and, for the course entry, a tree of per-course structured data.
// Entries are immutable after load.
type Entry struct {
	IntentTag         string                     `json:"intent" yaml:"intent"`
	TriggerPhrases    []string                   `json:"triggers" yaml:"triggers"`
	ResponseTemplates []string                   `json:"responses" yaml:"responses"`
	MediaRef          *string                    `json:"media,omitempty" yaml:"media,omitempty"`
	Courses           map[string]core.CourseInfo `json:"courses,omitempty" yaml:"courses,omitempty"`
}

// Base is the read-only knowledge base. Declaration order of entries is
// preserved because fuzzy ties resolve to the first entry encountered. An
// empty base is valid and simply never matches.
type Base struct {
	entries []Entry
	byTag   map[string]int
}

// New builds a base from the given entries, preserving order. At most one
// entry may exist per intent tag; duplicates are a load error.
func New(entries ...Entry) (*Base, error) {
	b := &Base{byTag: make(map[string]int, len(entries))}
	for _, e := range entries {
		if e.IntentTag == "" {
			return nil, fmt.Errorf("knowledge entry without intent tag")
		}
		if _, exists := b.byTag[e.IntentTag]; exists {
			return nil, fmt.Errorf("duplicate intent tag %q", e.IntentTag)
		}
		b.byTag[e.IntentTag] = len(b.entries)
		b.entries = append(b.entries, e)
	}
	return b, nil
}

// Empty returns a base with no entries.
func Empty() *Base {
	b, _ := New()
	return b
}

// Entries returns the entries in declaration order. Callers must not mutate
// the returned slice.
func (b *Base) Entries() []Entry { return b.entries }

// Len returns the number of entries.
func (b *Base) Len() int { return len(b.entries) }

// Find returns the entry for an intent tag.
func (b *Base) Find(tag string) (Entry, bool) {
	idx, ok := b.byTag[tag]
	if !ok {
		return Entry{}, false
	}
	return b.entries[idx], true
}

// Course returns the structured data of one course, searching every entry
// that carries course data.
func (b *Base) Course(id string) (core.CourseInfo, bool) {
	for _, e := range b.entries {
		if c, ok := e.Courses[id]; ok {
			return c, true
		}
	}
	return core.CourseInfo{}, false
}

// Courses returns all courses of the base sorted by course id, which doubles
// as the digit selector order of the main menu.
func (b *Base) Courses() []core.CourseInfo {
	var out []core.CourseInfo
	for _, e := range b.entries {
		for _, c := range e.Courses {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Validate checks every course of the base for the five required detail
// sections. It returns the first authoring error found.
func (b *Base) Validate() error {
	for _, c := range b.Courses() {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}
