package dialog

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/extract"
	"github.com/hupe1980/dialogmesh/resolver"
)

// handleMainMenu routes main-menu input: course selection first (exact digit,
// id, name or alias, then fuzzy), then general intent resolution, then the
// unresolved fallback.
func (e *Engine) handleMainMenu(ctx context.Context, conv *core.Context, raw, norm string) (core.Response, error) {
	if course, ok := e.matchCourse(norm); ok {
		conv.Step = core.StepCourseSelected
		conv.CourseID = course.ID
		conv.Detail = ""
		conv.Registration = nil
		return core.NewResponse(courseMenuText(course)), nil
	}

	if res, ok := e.resolver.Resolve(norm, e.threshold); ok {
		conv.LastIntent = res.IntentTag
		text := res.Response
		if res.IntentTag == resolver.IntentGreeting {
			if list := e.courseList(); list != "" {
				text += "\n\n" + list
			}
		}
		return core.Response{Text: text, MediaRef: res.MediaRef}, nil
	}

	e.audit(ctx, core.NewUnresolvedQuery(conv.UserID, raw, e.now()))
	return core.NewResponse(e.defaultResponse), nil
}

// handleCourseSelected routes the eight-option course menu.
func (e *Engine) handleCourseSelected(ctx context.Context, conv *core.Context, raw, norm string) (core.Response, error) {
	course, ok := e.kb.Course(conv.CourseID)
	if !ok {
		conv.ResetToMenu()
		return core.NewResponse(internalErrorText), fmt.Errorf("course %q referenced by context: %w", conv.CourseID, core.ErrCourseNotFound)
	}

	opt, ok := matchCourseOption(norm, e.threshold)
	if !ok {
		e.audit(ctx, core.NewUnresolvedQuery(conv.UserID, raw, e.now()))
		return core.NewResponse(courseHelpText(course)), nil
	}

	switch opt.action {
	case actionDetail:
		text, err := course.Detail(opt.detail)
		if err != nil {
			// Authoring error, not input ambiguity: surface it to operators
			// while the user gets a generic apology.
			return core.NewResponse(internalErrorText), err
		}
		conv.Step = core.StepCourseDetail
		conv.Detail = opt.detail
		return core.NewResponse(text + "\n\n" + detailFollowUpText), nil

	case actionAdvisor:
		conv.Step = core.StepWaitingContact
		return core.NewResponse(askContactText), nil

	case actionEnroll:
		conv.Step = core.StepWaitingInscription
		conv.Registration = &core.PartialRegistration{}
		return core.NewResponse(askInscriptionText), nil

	default: // actionBack
		conv.ResetToMenu()
		return e.menuResponse(conv.UserID), nil
	}
}

// handleCourseDetail serves the three-option follow-up: cycle to the next
// detail section, hand off to an advisor, or return to the menu.
func (e *Engine) handleCourseDetail(ctx context.Context, conv *core.Context, raw, norm string) (core.Response, error) {
	course, ok := e.kb.Course(conv.CourseID)
	if !ok {
		conv.ResetToMenu()
		return core.NewResponse(internalErrorText), fmt.Errorf("course %q referenced by context: %w", conv.CourseID, core.ErrCourseNotFound)
	}

	switch matchDetailNav(norm, e.threshold) {
	case navNext:
		conv.Detail = core.NextDetail(conv.Detail)
		text, err := course.Detail(conv.Detail)
		if err != nil {
			return core.NewResponse(internalErrorText), err
		}
		return core.NewResponse(text + "\n\n" + detailFollowUpText), nil

	case navAdvisor:
		conv.Step = core.StepWaitingContact
		conv.Detail = ""
		return core.NewResponse(askContactText), nil

	case navBack:
		conv.ResetToMenu()
		return e.menuResponse(conv.UserID), nil

	default:
		e.audit(ctx, core.NewUnresolvedQuery(conv.UserID, raw, e.now()))
		return core.NewResponse(detailFollowUpText), nil
	}
}

// handleWaitingContact validates a phone number or email. A failed validation
// is an expected user mistake: it prompts a correction and is deliberately
// not logged as an unresolved query.
func (e *Engine) handleWaitingContact(ctx context.Context, conv *core.Context, raw string) core.Response {
	if phone, ok := phoneShape(raw); ok {
		e.audit(ctx, core.NewContactCaptured(conv.UserID, phone, "", e.now()))
		conv.ResetToMenu()
		return core.NewResponse(contactConfirmText)
	}
	if email, ok := extract.MatchEmail(strings.TrimSpace(raw)); ok {
		e.audit(ctx, core.NewContactCaptured(conv.UserID, "", email, e.now()))
		conv.ResetToMenu()
		return core.NewResponse(contactConfirmText)
	}
	return core.NewResponse(contactRetryText)
}

// handleWaitingInscription merges extracted fields into the draft and either
// completes the registration or prompts for exactly the missing fields.
func (e *Engine) handleWaitingInscription(ctx context.Context, conv *core.Context, raw string) core.Response {
	if conv.Registration == nil {
		conv.Registration = &core.PartialRegistration{}
	}
	conv.Registration.Merge(extract.Extract(raw))

	if !conv.Registration.Complete() {
		return core.NewResponse(missingFieldsText(conv.Registration.Missing()))
	}

	rec := core.RegistrationRecord{
		ID:         core.NewID(),
		UserID:     conv.UserID,
		CourseID:   conv.CourseID,
		Name:       conv.Registration.Name,
		DocumentID: conv.Registration.DocumentID,
		Phone:      conv.Registration.Phone,
		Email:      conv.Registration.Email,
		Timestamp:  e.now().UTC(),
	}
	e.audit(ctx, core.NewRegistrationCompleted(rec))

	courseName := rec.CourseID
	if course, ok := e.kb.Course(rec.CourseID); ok {
		courseName = course.DisplayName
	}
	conv.ResetToMenu()
	return core.NewResponse(registrationSummaryText(rec, courseName))
}
