package email

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"io"
	"strings"
	"text/template"

	"eventmanager/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

// Each notification has three files: <name>_subject.txt, <name>.txt and <name>.html.
var (
	textTemplates = template.Must(template.ParseFS(templateFS, "templates/*.txt"))
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html"))
)

// templateRenderer implements domain.EmailTemplateRenderer over the embedded templates.
type templateRenderer struct{}

// NewTemplateRenderer returns an EmailTemplateRenderer backed by the embedded templates folder.
func NewTemplateRenderer() domain.EmailTemplateRenderer {
	return &templateRenderer{}
}

// Render executes the named notification (e.g. "event_created") and returns subject, html and text bodies.
// HTML bodies are escaped by html/template.
func (r *templateRenderer) Render(templateName string, data any) (subject, htmlBody, textBody string, err error) {
	subjectTmpl := textTemplates.Lookup(templateName + "_subject.txt")
	textTmpl := textTemplates.Lookup(templateName + ".txt")
	htmlTmpl := htmlTemplates.Lookup(templateName + ".html")
	if subjectTmpl == nil || textTmpl == nil || htmlTmpl == nil {
		return "", "", "", fmt.Errorf("unknown email template %q", templateName)
	}

	if subject, err = execute(subjectTmpl.Execute, data); err != nil {
		return "", "", "", fmt.Errorf("render subject: %w", err)
	}
	if htmlBody, err = execute(htmlTmpl.Execute, data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	if textBody, err = execute(textTmpl.Execute, data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	return strings.TrimSpace(subject), htmlBody, textBody, nil
}

func execute(run func(w io.Writer, data any) error, data any) (string, error) {
	var buf bytes.Buffer
	if err := run(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
