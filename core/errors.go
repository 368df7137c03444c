package core

import "fmt"

var (
	// ErrCourseNotFound is returned when a conversation references a course id
	// absent from the knowledge base.
	ErrCourseNotFound = fmt.Errorf("course not found")

	// ErrCourseDataIncomplete is returned when a reachable course is missing a
	// required detail section. This is a knowledge-base authoring error, not a
	// user-input problem, and must stay distinguishable from input ambiguity.
	ErrCourseDataIncomplete = fmt.Errorf("course data incomplete")

	// ErrUnknownDetail is returned for a detail key outside the declared set.
	ErrUnknownDetail = fmt.Errorf("unknown detail key")
)
