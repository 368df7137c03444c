package core

import "time"

// PartialRegistration accumulates the four registration fields across turns.
// Missing fields are empty strings, never nil sentinels.
type PartialRegistration struct {
	Name       string `json:"name,omitempty"`
	DocumentID string `json:"document_id,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
}

// Merge copies every non-empty field of other into r. Fields already filled
// are overwritten by a non-empty replacement but never cleared by an empty one.
func (r *PartialRegistration) Merge(other PartialRegistration) {
	if other.Name != "" {
		r.Name = other.Name
	}
	if other.DocumentID != "" {
		r.DocumentID = other.DocumentID
	}
	if other.Phone != "" {
		r.Phone = other.Phone
	}
	if other.Email != "" {
		r.Email = other.Email
	}
}

// Complete reports whether all four fields are non-empty.
func (r *PartialRegistration) Complete() bool {
	return r.Name != "" && r.DocumentID != "" && r.Phone != "" && r.Email != ""
}

// Missing returns the display names of the fields still empty, in the fixed
// collection order used by prompts.
func (r *PartialRegistration) Missing() []string {
	var missing []string
	if r.Name == "" {
		missing = append(missing, "nombre")
	}
	if r.DocumentID == "" {
		missing = append(missing, "documento")
	}
	if r.Phone == "" {
		missing = append(missing, "telefono")
	}
	if r.Email == "" {
		missing = append(missing, "correo")
	}
	return missing
}

// RegistrationRecord is the completed form emitted exactly once, when the
// last missing field arrives.
type RegistrationRecord struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	CourseID   string    `json:"course_id"`
	Name       string    `json:"name"`
	DocumentID string    `json:"document_id"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	Timestamp  time.Time `json:"timestamp"`
}
