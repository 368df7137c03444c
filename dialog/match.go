package dialog

import (
	"strings"

	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/resolver"
	"github.com/hupe1980/dialogmesh/textnorm"
)

// backCommands is the closed set of normalized phrases and digits that force
// a return to the main menu from any step outside free-text collection.
var backCommands = map[string]struct{}{
	"0":              {},
	"menu":           {},
	"volver":         {},
	"volver al menu": {},
	"inicio":         {},
	"regresar":       {},
	"salir":          {},
}

func isBackCommand(norm string) bool {
	_, ok := backCommands[norm]
	return ok
}

// courseAction is the kind of transition a course-menu option triggers.
type courseAction int

const (
	actionDetail courseAction = iota
	actionAdvisor
	actionEnroll
	actionBack
)

type courseOption struct {
	action   courseAction
	detail   core.DetailKey
	digit    string
	synonyms []string
}

// courseOptions is the eight-option course menu: five detail sections,
// advisor hand-off, enrollment and back, each reachable by digit, exact
// synonym or fuzzy match.
var courseOptions = []courseOption{
	{actionDetail, core.DetailSchedule, "1", []string{"horario", "horarios", "ver horarios"}},
	{actionDetail, core.DetailCost, "2", []string{"costo", "costos", "precio", "precios", "valor", "cuanto cuesta", "cuanto vale"}},
	{actionDetail, core.DetailRequirements, "3", []string{"requisito", "requisitos"}},
	{actionDetail, core.DetailDuration, "4", []string{"duracion", "cuanto dura", "tiempo"}},
	{actionDetail, core.DetailCertification, "5", []string{"certificacion", "certificado", "diploma"}},
	{actionAdvisor, "", "6", []string{"asesor", "hablar", "hablar con un asesor", "hablar con asesor", "asesoria"}},
	{actionEnroll, "", "7", []string{"inscribirme", "inscripcion", "inscribir", "matricula", "matricularme", "quiero inscribirme"}},
	{actionBack, "", "8", []string{"volver", "menu", "volver al menu", "regresar", "atras"}},
}

// matchCourseOption tries exact digit and synonym lookup, then the best fuzzy
// synonym above the threshold.
func matchCourseOption(norm string, threshold float64) (courseOption, bool) {
	if norm == "" {
		return courseOption{}, false
	}
	for _, opt := range courseOptions {
		if norm == opt.digit {
			return opt, true
		}
		for _, s := range opt.synonyms {
			if norm == s {
				return opt, true
			}
		}
	}

	var best courseOption
	bestScore := 0.0
	for _, opt := range courseOptions {
		for _, s := range opt.synonyms {
			if score := resolver.DiceCoefficient(norm, s); score > bestScore {
				bestScore = score
				best = opt
			}
		}
	}
	if bestScore > threshold {
		return best, true
	}
	return courseOption{}, false
}

// detailNav is the three-option follow-up inside a detail section.
type detailNav int

const (
	navNone detailNav = iota
	navNext
	navAdvisor
	navBack
)

var detailNavOptions = []struct {
	nav      detailNav
	digit    string
	synonyms []string
}{
	{navNext, "1", []string{"mas informacion", "otra informacion", "ver mas informacion", "siguiente", "mas", "otro"}},
	{navAdvisor, "2", []string{"asesor", "hablar", "hablar con un asesor", "hablar con asesor"}},
	{navBack, "3", []string{"volver", "menu", "volver al menu", "regresar"}},
}

func matchDetailNav(norm string, threshold float64) detailNav {
	if norm == "" {
		return navNone
	}
	for _, opt := range detailNavOptions {
		if norm == opt.digit {
			return opt.nav
		}
		for _, s := range opt.synonyms {
			if norm == s {
				return opt.nav
			}
		}
	}

	best := navNone
	bestScore := 0.0
	for _, opt := range detailNavOptions {
		for _, s := range opt.synonyms {
			if score := resolver.DiceCoefficient(norm, s); score > bestScore {
				bestScore = score
				best = opt.nav
			}
		}
	}
	if bestScore > threshold {
		return best
	}
	return navNone
}

// matchCourse resolves main-menu input to a course: exact course id,
// normalized display name or alias first, then the best fuzzy alias above
// the threshold.
func (e *Engine) matchCourse(norm string) (core.CourseInfo, bool) {
	if norm == "" {
		return core.CourseInfo{}, false
	}
	courses := e.kb.Courses()
	for _, c := range courses {
		if norm == c.ID || norm == textnorm.Normalize(c.DisplayName) {
			return c, true
		}
		for _, a := range c.Aliases {
			if norm == textnorm.Normalize(a) {
				return c, true
			}
		}
	}

	var best core.CourseInfo
	bestScore := 0.0
	found := false
	for _, c := range courses {
		candidates := append([]string{c.DisplayName}, c.Aliases...)
		for _, cand := range candidates {
			if score := resolver.DiceCoefficient(norm, textnorm.Normalize(cand)); score > bestScore {
				bestScore = score
				best = c
				found = true
			}
		}
	}
	if found && bestScore > e.threshold {
		return best, true
	}
	return core.CourseInfo{}, false
}

// phoneShape reports the digit string of raw when, after discarding common
// separators, it is 7 to 15 digits and nothing else.
func phoneShape(raw string) (string, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '(', ')', '+', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	if len(cleaned) < 7 || len(cleaned) > 15 {
		return "", false
	}
	if textnorm.Digits(cleaned) != cleaned {
		return "", false
	}
	return cleaned, true
}
