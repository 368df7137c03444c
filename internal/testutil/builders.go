// Package testutil provides shared builders for tests: a small bilingual-free
// Spanish knowledge base with two courses and helpers for conversation
// contexts.
package testutil

import (
	"github.com/hupe1980/dialogmesh/core"
	"github.com/hupe1980/dialogmesh/knowledge"
)

// Course builds a CourseInfo with all five detail sections populated.
func Course(id, name, emoji string, aliases ...string) core.CourseInfo {
	return core.CourseInfo{
		ID:          id,
		DisplayName: name,
		Emoji:       emoji,
		Aliases:     aliases,
		Details: map[core.DetailKey]string{
			core.DetailSchedule:      "Horario del curso " + name,
			core.DetailCost:          "Costo del curso " + name,
			core.DetailRequirements:  "Requisitos del curso " + name,
			core.DetailDuration:      "Duracion del curso " + name,
			core.DetailCertification: "Certificacion del curso " + name,
		},
	}
}

// Base builds the standard test knowledge base: greeting/farewell/location/
// contact/info intents plus a course entry with two courses ("1" and "2").
func Base() *knowledge.Base {
	base, err := knowledge.New(
		knowledge.Entry{
			IntentTag:         "saludo",
			TriggerPhrases:    []string{"hola", "buenos dias"},
			ResponseTemplates: []string{"¡Hola! Soy el asistente académico."},
		},
		knowledge.Entry{
			IntentTag:         "despedida",
			TriggerPhrases:    []string{"adios", "hasta luego"},
			ResponseTemplates: []string{"¡Hasta pronto!"},
		},
		knowledge.Entry{
			IntentTag:         "informacion",
			TriggerPhrases:    []string{"quiero informacion", "que cursos tienen"},
			ResponseTemplates: []string{"Ofrecemos cursos de tecnología con certificación."},
		},
		knowledge.Entry{
			IntentTag:         "ubicacion",
			TriggerPhrases:    []string{"donde estan ubicados"},
			ResponseTemplates: []string{"Estamos en la Calle 10 #20-30."},
		},
		knowledge.Entry{
			IntentTag:         "contacto",
			TriggerPhrases:    []string{"como los contacto"},
			ResponseTemplates: []string{"Escríbenos al 3100000000."},
		},
		knowledge.Entry{
			IntentTag:         "cursos",
			TriggerPhrases:    []string{"cursos disponibles", "ver cursos"},
			ResponseTemplates: []string{"Estos son nuestros cursos:"},
			Courses: map[string]core.CourseInfo{
				"1": Course("1", "Inteligencia Artificial", "🤖", "ia", "inteligencia artificial"),
				"2": Course("2", "Analitica de Datos", "📊", "datos", "analitica de datos"),
			},
		},
	)
	if err != nil {
		panic(err)
	}
	return base
}
