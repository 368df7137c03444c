package core

import "time"

// Step identifies the current position of a conversation in the dialog state
// machine. The machine has no terminal step; every flow eventually returns to
// StepMainMenu.
type Step int

const (
	// StepMainMenu is the initial step for every new user.
	StepMainMenu Step = iota
	// StepCourseSelected means a course was chosen and its option menu is active.
	StepCourseSelected
	// StepCourseDetail means a specific detail section of a course is being served.
	StepCourseDetail
	// StepWaitingContact means the user was asked for a phone number or email.
	StepWaitingContact
	// StepWaitingInscription means registration data is being collected.
	StepWaitingInscription
)

// String returns the string representation of the step.
func (s Step) String() string {
	switch s {
	case StepMainMenu:
		return "main_menu"
	case StepCourseSelected:
		return "course_selected"
	case StepCourseDetail:
		return "course_detail"
	case StepWaitingContact:
		return "waiting_contact"
	case StepWaitingInscription:
		return "waiting_inscription"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the five declared steps.
func (s Step) Valid() bool {
	return s >= StepMainMenu && s <= StepWaitingInscription
}

// DetailKey identifies one of the five course detail sections.
type DetailKey string

const (
	// DetailSchedule is the course schedule section.
	DetailSchedule DetailKey = "horario"
	// DetailCost is the course cost section.
	DetailCost DetailKey = "costo"
	// DetailRequirements is the course requirements section.
	DetailRequirements DetailKey = "requisitos"
	// DetailDuration is the course duration section.
	DetailDuration DetailKey = "duracion"
	// DetailCertification is the course certification section.
	DetailCertification DetailKey = "certificacion"
)

// DetailOrder is the fixed cyclic order in which detail sections are advanced
// by the "more info" option. NextDetail wraps after the last entry.
var DetailOrder = []DetailKey{
	DetailSchedule,
	DetailCost,
	DetailRequirements,
	DetailDuration,
	DetailCertification,
}

// NextDetail returns the detail key following d in DetailOrder, wrapping to
// the first entry after the last. An unknown key yields the first entry.
func NextDetail(d DetailKey) DetailKey {
	for i, k := range DetailOrder {
		if k == d {
			return DetailOrder[(i+1)%len(DetailOrder)]
		}
	}
	return DetailOrder[0]
}

// Context represents one user's conversation state. It is created lazily on
// the first inbound message and mutated exclusively by the dialog engine;
// stores hand out clones so no other component can alias its fields.
type Context struct {
	UserID       string               `json:"user_id"`
	Step         Step                 `json:"step"`
	CourseID     string               `json:"course_id,omitempty"`
	Detail       DetailKey            `json:"detail,omitempty"`
	Registration *PartialRegistration `json:"registration,omitempty"`
	LastIntent   string               `json:"last_intent,omitempty"`
	Created      time.Time            `json:"created"`
	Updated      time.Time            `json:"updated"`
}

// NewContext creates a fresh context positioned at the main menu.
func NewContext(userID string) *Context {
	now := time.Now().UTC()
	return &Context{UserID: userID, Step: StepMainMenu, Created: now, Updated: now}
}

// Clone returns a deep copy of the context safe for independent mutation.
func (c *Context) Clone() *Context {
	clone := *c
	if c.Registration != nil {
		reg := *c.Registration
		clone.Registration = &reg
	}
	return &clone
}

// ResetToMenu returns the context to the main menu, clearing course, detail
// and any in-progress registration draft. The user identity and timestamps
// survive the reset.
func (c *Context) ResetToMenu() {
	c.Step = StepMainMenu
	c.CourseID = ""
	c.Detail = ""
	c.Registration = nil
}

// ContextStore persists per-user conversation contexts. Get creates a fresh
// main-menu context lazily when none exists. Implementations hand out clones;
// mutations become visible only through Save.
type ContextStore interface {
	Get(userID string) (*Context, error)
	Save(ctx *Context) error
}
