package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobquest/internal/model"
)

func TestAnalysis(t *testing.T) {
	p := model.Profile{
		WorkStyle:        model.ProfileEntry{Description: "Structured", Explanation: "You like routines."},
		Environment:      model.ProfileEntry{Description: "Quiet"},
		InteractionLevel: model.ProfileEntry{Description: "Minimal"},
		TaskPreference:   model.ProfileEntry{Description: "<b>Detailed</b>"},
	}

	out, err := Analysis(p)
	require.NoError(t, err)
	html := string(out)

	titles := []string{"Work Style", "Ideal Environment", "Interaction Level", "Task Preferences", "Additional Insights"}
	last := -1
	for _, title := range titles {
		idx := strings.Index(html, "<h3>"+title+"</h3>")
		require.GreaterOrEqual(t, idx, 0, title)
		assert.Greater(t, idx, last, "%s out of order", title)
		last = idx
	}

	assert.Contains(t, html, "You like routines.")
	assert.Contains(t, html, "No additional insights")
	assert.Contains(t, html, "&lt;b&gt;Detailed&lt;/b&gt;")
	assert.NotContains(t, html, "<b>Detailed</b>")
}
