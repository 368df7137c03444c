package extract

import (
	"regexp"
	"strings"

	"github.com/hupe1980/dialogmesh/core"
)

// field identifies one of the four registration fields inside the pipeline.
type field int

const (
	fieldName field = iota
	fieldDocument
	fieldPhone
	fieldEmail
)

// labelSynonyms lists, per field, the accepted label spellings in match
// order. Accented variants are included because heuristics run on raw text,
// not normalized text.
var labelSynonyms = map[field][]string{
	fieldName:     {"nombre", "name"},
	fieldDocument: {"documento", "cedula", "cédula", "identificacion", "identificación", "dni"},
	fieldPhone:    {"telefono", "teléfono", "celular", "contacto", "whatsapp"},
	fieldEmail:    {"correo", "email", "mail"},
}

var (
	// labelRes holds one compiled pattern per label: the label as a whole
	// word, optional separator, then the value up to end of line.
	labelRes = compileLabelPatterns()

	// cutRe finds a later recognized label inside a captured value so inline
	// forms like "Nombre: Ana Telefono: 310..." stop before the next label.
	cutRe = regexp.MustCompile(`(?i)\s\b(?:` + strings.Join(allLabels(), "|") + `)\b\s*[:=]`)

	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
)

func allLabels() []string {
	var out []string
	for _, f := range []field{fieldName, fieldDocument, fieldPhone, fieldEmail} {
		for _, l := range labelSynonyms[f] {
			out = append(out, regexp.QuoteMeta(l))
		}
	}
	return out
}

func compileLabelPatterns() map[field][]*regexp.Regexp {
	out := make(map[field][]*regexp.Regexp, len(labelSynonyms))
	for f, labels := range labelSynonyms {
		for _, l := range labels {
			re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(l) + `\b[:\s]+([^\n]+)`)
			out[f] = append(out[f], re)
		}
	}
	return out
}

// heuristic fills still-empty fields of the draft from raw text. Each step of
// the pipeline is pure with respect to everything but its draft argument.
type heuristic func(raw string, draft *core.PartialRegistration)

var pipeline = []heuristic{labeledFields, positionalLines, emailRescue}

// Extract pulls the four registration fields from free text using the
// cascading heuristics: labeled fields, positional line fallback, then email
// rescue. It never fails; fields it cannot find stay empty.
func Extract(raw string) core.PartialRegistration {
	var draft core.PartialRegistration
	for _, h := range pipeline {
		h(raw, &draft)
	}
	return draft
}

// labeledFields scans label synonyms per field; the first synonym that
// matches wins and the value runs to the next newline or recognized label.
func labeledFields(raw string, draft *core.PartialRegistration) {
	for _, f := range []field{fieldName, fieldDocument, fieldPhone, fieldEmail} {
		if fieldValue(draft, f) != "" {
			continue
		}
		for _, re := range labelRes[f] {
			m := re.FindStringSubmatch(raw)
			if m == nil {
				continue
			}
			value := truncateAtNextLabel(m[1])
			value = strings.Trim(strings.TrimSpace(value), ",;")
			if value != "" {
				setFieldValue(draft, f, value)
				break
			}
		}
	}
}

func truncateAtNextLabel(value string) string {
	if loc := cutRe.FindStringIndex(value); loc != nil {
		return value[:loc[0]]
	}
	return value
}

// positionalLines only runs when labels left gaps: with four or more
// non-blank lines, lines one to three map to name, document and phone; the
// email slot prefers the first remaining line containing "@" and otherwise
// takes line four verbatim.
func positionalLines(raw string, draft *core.PartialRegistration) {
	if draft.Complete() {
		return
	}
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) < 4 {
		return
	}

	if draft.Name == "" {
		draft.Name = lines[0]
	}
	if draft.DocumentID == "" {
		draft.DocumentID = lines[1]
	}
	if draft.Phone == "" {
		draft.Phone = lines[2]
	}
	if draft.Email == "" {
		email := lines[3]
		for _, line := range lines[3:] {
			if strings.Contains(line, "@") {
				email = line
				break
			}
		}
		draft.Email = email
	}
}

// emailRescue scans the whole raw text for an email-shaped token whenever the
// email slot is still empty or not actually an address.
func emailRescue(raw string, draft *core.PartialRegistration) {
	if draft.Email != "" && strings.Contains(draft.Email, "@") {
		return
	}
	if m := emailRe.FindString(raw); m != "" {
		draft.Email = m
	}
}

func fieldValue(draft *core.PartialRegistration, f field) string {
	switch f {
	case fieldName:
		return draft.Name
	case fieldDocument:
		return draft.DocumentID
	case fieldPhone:
		return draft.Phone
	default:
		return draft.Email
	}
}

func setFieldValue(draft *core.PartialRegistration, f field, value string) {
	switch f {
	case fieldName:
		draft.Name = value
	case fieldDocument:
		draft.DocumentID = value
	case fieldPhone:
		draft.Phone = value
	default:
		draft.Email = value
	}
}

// MatchEmail reports the first email-shaped token of s, if any. Exposed for
// the contact-capture validation in the dialog engine.
func MatchEmail(s string) (string, bool) {
	m := emailRe.FindString(s)
	return m, m != ""
}
