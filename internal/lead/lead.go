// Package lead builds the pre-filled WhatsApp message and deep link used by
// lead-type offers. The message layout is read by a human inside WhatsApp, so
// the exact line sequence is part of the contract.
package lead

import (
	"net/url"
	"strings"

	"coaching-offers-api/internal/models"
)

const (
	// whatsappPhone is the business click-to-chat number, E.164 digits only.
	whatsappPhone = "5491144778899"

	separator = "---"
	greeting  = "Hola Pepu, estoy interesado en empezar a entrenar."
	planGreet = "Hola Pepu, estoy interesado en el plan: "
	closing   = "¿Cómo seguimos?"
)

// BuildMessage renders the lead message for the given payload. Without a plan
// title it emits the short generic template; with one it adds the full field
// block. Absent fields render blank.
func BuildMessage(p models.LeadPayload) string {
	if p.PlanTitle == "" {
		lines := []string{
			greeting,
			"",
			separator,
			"Nombre:",
			"Apellido:",
			"",
			separator,
			closing,
		}
		return strings.Join(lines, "\n")
	}

	lines := []string{
		planGreet + p.PlanTitle,
		"",
		separator,
		"Nombre: " + p.FirstName,
		"Apellido: " + p.LastName,
		"Objetivo: " + p.Objective,
		"Dias de entrenamiento: " + p.Days,
		"Experiencia: " + p.Experience,
		"",
		separator,
		closing,
	}
	return strings.Join(lines, "\n")
}

// WhatsAppURL composes the click-to-chat URL for a message. Pure string
// formatting, no validation of the phone number.
func WhatsAppURL(message string) string {
	return "https://api.whatsapp.com/send/?phone=" + whatsappPhone +
		"&text=" + url.QueryEscape(message) +
		"&type=phone_number&app_absent=0"
}
