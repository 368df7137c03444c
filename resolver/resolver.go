package resolver

import (
	"math/rand"

	"github.com/hupe1980/dialogmesh/knowledge"
	"github.com/hupe1980/dialogmesh/textnorm"
)

// Well-known intent tags targeted by the closed-class keyword sets. The tags
// double as knowledge-base entry keys.
const (
	IntentFarewell = "despedida"
	IntentInfo     = "informacion"
	IntentLocation = "ubicacion"
	IntentContact  = "contacto"
	IntentGreeting = "saludo"
)

// closedClass maps exact normalized phrases to one intent each. Order is the
// fixed tie-break priority: the first matching set wins.
var closedClass = []struct {
	intent  string
	phrases []string
}{
	{IntentFarewell, []string{"adios", "chao", "chau", "hasta luego", "nos vemos", "bye"}},
	{IntentInfo, []string{"informacion", "info", "quiero informacion", "mas informacion"}},
	{IntentLocation, []string{"ubicacion", "direccion", "donde estan", "donde quedan", "donde estan ubicados"}},
	{IntentContact, []string{"contacto", "numero", "telefono", "como los contacto"}},
	{IntentGreeting, []string{"hola", "buenas", "buenos dias", "buenas tardes", "buenas noches", "hi", "hello", "hey"}},
}

// Resolution is the outcome of a successful intent match.
type Resolution struct {
	IntentTag string
	Response  string
	Score     float64
	MediaRef  *string
}

// Options configures a Resolver.
type Options struct {
	// Chooser picks a response template index given the template count.
	// Injectable so tests can pin the otherwise random selection. The choice
	// is cosmetic and never affects which intent wins.
	Chooser func(n int) int
}

// Resolver decides an intent for normalized user text: exact closed-class
// keyword sets first, then bigram similarity scoring over every trigger
// phrase of the knowledge base. It is a pure function of (text, base); the
// caller owns context updates and unresolved-query auditing.
type Resolver struct {
	base    *knowledge.Base
	chooser func(n int) int
}

// New creates a Resolver over the given knowledge base.
func New(base *knowledge.Base, optFns ...func(o *Options)) *Resolver {
	opts := Options{Chooser: rand.Intn}
	for _, fn := range optFns {
		fn(&opts)
	}
	if base == nil {
		base = knowledge.Empty()
	}
	return &Resolver{base: base, chooser: opts.Chooser}
}

// Resolve matches normalized text against the knowledge base. The boolean is
// false when nothing clears the threshold (the unresolved case). Ties at the
// maximum score go to the first entry in declaration order.
func (r *Resolver) Resolve(normalized string, threshold float64) (Resolution, bool) {
	if normalized == "" || r.base.Len() == 0 {
		return Resolution{}, false
	}

	if res, ok := r.resolveClosedClass(normalized); ok {
		return res, true
	}

	best := Resolution{Score: -1}
	for _, entry := range r.base.Entries() {
		for _, phrase := range entry.TriggerPhrases {
			score := DiceCoefficient(normalized, textnorm.Normalize(phrase))
			if score > best.Score {
				best = Resolution{
					IntentTag: entry.IntentTag,
					Response:  r.pickTemplate(entry),
					Score:     score,
					MediaRef:  entry.MediaRef,
				}
			}
		}
	}
	if best.Score > threshold {
		return best, true
	}
	return Resolution{}, false
}

// resolveClosedClass checks the fixed keyword sets in priority order. A match
// whose knowledge entry is absent falls through to similarity scoring so a
// partially populated base degrades instead of failing.
func (r *Resolver) resolveClosedClass(normalized string) (Resolution, bool) {
	for _, set := range closedClass {
		for _, phrase := range set.phrases {
			if phrase != normalized {
				continue
			}
			entry, ok := r.base.Find(set.intent)
			if !ok {
				return Resolution{}, false
			}
			return Resolution{
				IntentTag: set.intent,
				Response:  r.pickTemplate(entry),
				Score:     1,
				MediaRef:  entry.MediaRef,
			}, true
		}
	}
	return Resolution{}, false
}

func (r *Resolver) pickTemplate(entry knowledge.Entry) string {
	if len(entry.ResponseTemplates) == 0 {
		return ""
	}
	idx := r.chooser(len(entry.ResponseTemplates))
	if idx < 0 || idx >= len(entry.ResponseTemplates) {
		idx = 0
	}
	return entry.ResponseTemplates[idx]
}
