package ui

import (
	"fmt"
	"io"
	"strings"

	"jobquest/internal/model"
)

var sectionTitles = map[model.Category]string{
	model.CategoryWorkStyle:          "Work Style",
	model.CategoryEnvironment:        "Ideal Environment",
	model.CategoryInteractionLevel:   "Interaction Level",
	model.CategoryTaskPreference:     "Task Preferences",
	model.CategoryAdditionalInsights: "Additional Insights",
}

// RenderResults writes a plain-text view of r
func RenderResults(w io.Writer, r *model.Results) error {
	var b strings.Builder

	b.WriteString("Your work profile\n\n")
	for _, c := range model.Categories {
		e := r.Profile.Entry(c)
		fmt.Fprintf(&b, "%s: %s\n", sectionTitles[c], e.Description)
		if e.Explanation != "" {
			fmt.Fprintf(&b, "  %s\n", e.Explanation)
		}
	}

	b.WriteString("\nRecommended roles\n")
	if len(r.Recommendations) == 0 {
		b.WriteString("\nNo recommendations available.\n")
	}
	for i, rec := range r.Recommendations {
		fmt.Fprintf(&b, "\n%d. %s (%d%% match)\n", i+1, rec.Title, rec.MatchScore)
		if rec.Description != "" {
			fmt.Fprintf(&b, "   %s\n", rec.Description)
		}
		if rec.Environment != "" {
			fmt.Fprintf(&b, "   Location: %s\n", rec.Environment)
		}
		if len(rec.KeyTraits) > 0 {
			fmt.Fprintf(&b, "   Matches: %s\n", strings.Join(rec.KeyTraits, ", "))
		}
		for _, c := range rec.Considerations {
			fmt.Fprintf(&b, "   - %s\n", c)
		}
		if rec.URL != "" {
			fmt.Fprintf(&b, "   %s\n", rec.URL)
		}
	}

	if r.AssessmentID != "" {
		fmt.Fprintf(&b, "\nAssessment id: %s\n", r.AssessmentID)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
