package surveillance

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/agrinet/cropguard-api/schema"
	"github.com/agrinet/cropguard-api/utils"
)

// Alert content is a pure function of the report and the match. The
// treatment recommendation is quoted verbatim from the classifier
// output. English defaults live here so message files stay optional.

func emailSubject() string {
	loc := utils.NewLocalizer("en")

	subject, err := loc.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    "alert.email.subject",
			Other: "URGENT: Crop Disease Alert in Your Area",
		},
	})
	if err != nil {
		return "URGENT: Crop Disease Alert in Your Area"
	}
	return subject
}

func emailBody(report schema.DiseaseReport, m Match) string {
	loc := utils.NewLocalizer("en")

	body, err := loc.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: "alert.email.body",
			Other: "Dear {{.Name}},\n\n" +
				"A {{.Severity}} severity case of {{.Disease}} has been detected approximately {{.Distance}} km from your farm.\n\n" +
				"Recommended treatment: {{.Treatment}}\n\n" +
				"Please inspect your crops as soon as possible.\n\n" +
				"This is an automated alert from the Crop Disease Monitoring System.",
		},
		TemplateData: messageData(report, m),
	})
	if err != nil {
		return fmt.Sprintf("A %s severity case of %s has been detected approximately %.1f km from your farm. Recommended treatment: %s",
			report.Severity, report.DiseaseName, m.DistanceKm, report.Treatment)
	}
	return body
}

func smsBody(report schema.DiseaseReport, m Match) string {
	loc := utils.NewLocalizer("en")

	body, err := loc.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    "alert.sms.body",
			Other: "Crop alert: {{.Severity}} severity {{.Disease}} detected {{.Distance}} km from your farm. Treatment: {{.Treatment}}",
		},
		TemplateData: messageData(report, m),
	})
	if err != nil {
		return fmt.Sprintf("Crop alert: %s severity %s detected %.1f km from your farm. Treatment: %s",
			report.Severity, report.DiseaseName, m.DistanceKm, report.Treatment)
	}
	return body
}

func messageData(report schema.DiseaseReport, m Match) map[string]interface{} {
	return map[string]interface{}{
		"Name":      m.Farmer.Name,
		"Disease":   report.DiseaseName,
		"Severity":  string(report.Severity),
		"Distance":  fmt.Sprintf("%.1f", m.DistanceKm),
		"Treatment": report.Treatment,
	}
}
