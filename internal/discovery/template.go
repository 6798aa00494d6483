package discovery

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/JaLnYn/zed-pyenvselect/internal/models"
)

// TemplateData is the root object exposed to user-supplied templates.
type TemplateData struct {
	Records []models.Record
	Count   int
}

// RenderTemplate renders records through a user-supplied Go template with
// sprig functions available, for scripting consumers that want a format
// other than the banner listing.
func RenderTemplate(records []models.Record, tmpl string) (string, error) {
	t, err := template.New("records").Funcs(sprig.FuncMap()).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	data := TemplateData{
		Records: records,
		Count:   len(records),
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
