package render

import (
	"bytes"
	"fmt"
	"html/template"

	"jobquest/internal/model"
)

var sectionTitles = map[model.Category]string{
	model.CategoryWorkStyle:          "Work Style",
	model.CategoryEnvironment:        "Ideal Environment",
	model.CategoryInteractionLevel:   "Interaction Level",
	model.CategoryTaskPreference:     "Task Preferences",
	model.CategoryAdditionalInsights: "Additional Insights",
}

var analysisTmpl = template.Must(template.New("analysis").Parse(`<div class="analysis-section">
{{- range .}}
    <h3>{{.Title}}</h3>
    <p class="mb-2"><strong>{{.Description}}</strong></p>
    <p class="text-muted mb-4">{{.Explanation}}</p>
{{- end}}
</div>
`))

type section struct {
	Title       string
	Description string
	Explanation string
}

// Analysis renders the five profile sections as an HTML fragment. Values are escaped.
func Analysis(p model.Profile) ([]byte, error) {
	sections := make([]section, 0, len(model.Categories))
	for _, c := range model.Categories {
		e := p.Entry(c)
		if c == model.CategoryAdditionalInsights && e.Description == "" {
			e = model.NoAdditionalInsights
		}
		sections = append(sections, section{
			Title:       sectionTitles[c],
			Description: e.Description,
			Explanation: e.Explanation,
		})
	}

	var buf bytes.Buffer
	if err := analysisTmpl.Execute(&buf, sections); err != nil {
		return nil, fmt.Errorf("render analysis: %w", err)
	}
	return buf.Bytes(), nil
}
