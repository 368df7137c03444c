package dialog

import (
	"strings"

	"github.com/hupe1980/dialogmesh/core"
)

const (
	internalErrorText = "⚠️ Ocurrió un error interno. Intenta nuevamente más tarde."

	askContactText = "¡Con gusto! 🙋 Déjanos tu número de teléfono o tu correo electrónico y un asesor te contactará."

	contactConfirmText = "✅ ¡Gracias! Un asesor te contactará pronto. Escribe 'menu' para volver al inicio."

	contactRetryText = "No pude reconocer un teléfono ni un correo válido. 🤔 Envía un número de 7 a 15 dígitos o un correo como nombre@dominio.com."

	askInscriptionText = "¡Excelente decisión! 🎓 Para inscribirte envíame estos datos:\n- Nombre\n- Documento\n- Teléfono\n- Correo\n\nPuedes enviarlos todos juntos o uno por uno."

	detailFollowUpText = "¿Deseas algo más?\n1. Ver más información\n2. Hablar con un asesor\n3. Volver al menú"
)

var courseMenuOptions = []string{
	"1. Horarios",
	"2. Costos",
	"3. Requisitos",
	"4. Duración",
	"5. Certificación",
	"6. Hablar con un asesor",
	"7. Inscribirme",
	"8. Volver al menú",
}

func courseTitle(c core.CourseInfo) string {
	if c.Emoji != "" {
		return c.Emoji + " *" + c.DisplayName + "*"
	}
	return "*" + c.DisplayName + "*"
}

// courseMenuText is the welcome shown when a course is selected.
func courseMenuText(c core.CourseInfo) string {
	var b strings.Builder
	b.WriteString(courseTitle(c))
	b.WriteString("\n\n¿Qué deseas saber?")
	for _, opt := range courseMenuOptions {
		b.WriteString("\n")
		b.WriteString(opt)
	}
	return b.String()
}

// courseHelpText is the course-scoped help shown on unrecognized input.
func courseHelpText(c core.CourseInfo) string {
	var b strings.Builder
	b.WriteString("No entendí tu respuesta. Estas son las opciones para ")
	b.WriteString(courseTitle(c))
	b.WriteString(":")
	for _, opt := range courseMenuOptions {
		b.WriteString("\n")
		b.WriteString(opt)
	}
	return b.String()
}

// missingFieldsText prompts for exactly the still-missing registration fields.
func missingFieldsText(missing []string) string {
	var b strings.Builder
	b.WriteString("¡Gracias! Aún me faltan estos datos:")
	for _, m := range missing {
		b.WriteString("\n- ")
		b.WriteString(m)
	}
	return b.String()
}

// registrationSummaryText confirms a completed registration.
func registrationSummaryText(rec core.RegistrationRecord, courseName string) string {
	var b strings.Builder
	b.WriteString("🎉 ¡Inscripción completada!\n")
	b.WriteString("Curso: ")
	b.WriteString(courseName)
	b.WriteString("\nNombre: ")
	b.WriteString(rec.Name)
	b.WriteString("\nDocumento: ")
	b.WriteString(rec.DocumentID)
	b.WriteString("\nTeléfono: ")
	b.WriteString(rec.Phone)
	b.WriteString("\nCorreo: ")
	b.WriteString(rec.Email)
	b.WriteString("\n\nUn asesor confirmará tu cupo muy pronto. Escribe 'menu' para volver al inicio.")
	return b.String()
}
