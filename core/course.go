package core

import "fmt"

// CourseInfo holds the structured data served for one course by the menu
// flow. Details must contain all five keys of DetailOrder before a course is
// servable; a missing key is a knowledge-base authoring error, surfaced via
// Detail rather than silently substituted.
type CourseInfo struct {
	ID          string               `json:"id" yaml:"id"`
	DisplayName string               `json:"name" yaml:"name"`
	Emoji       string               `json:"emoji,omitempty" yaml:"emoji,omitempty"`
	Aliases     []string             `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Details     map[DetailKey]string `json:"details" yaml:"details"`
}

// Detail returns the text of the requested detail section. A key outside
// DetailOrder yields ErrUnknownDetail; a declared key absent from Details
// yields ErrCourseDataIncomplete.
func (c CourseInfo) Detail(key DetailKey) (string, error) {
	known := false
	for _, k := range DetailOrder {
		if k == key {
			known = true
			break
		}
	}
	if !known {
		return "", fmt.Errorf("course %q: %q: %w", c.ID, key, ErrUnknownDetail)
	}
	text, ok := c.Details[key]
	if !ok || text == "" {
		return "", fmt.Errorf("course %q missing detail %q: %w", c.ID, key, ErrCourseDataIncomplete)
	}
	return text, nil
}

// Validate checks that every detail section of DetailOrder is present.
func (c CourseInfo) Validate() error {
	for _, k := range DetailOrder {
		if _, err := c.Detail(k); err != nil {
			return err
		}
	}
	return nil
}
