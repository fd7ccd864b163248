package helpers

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// Text strips all HTML tags from free-text input and trims surrounding whitespace. Entities are decoded
// again so "Q&A" survives; output is escaped when rendered.
func Text(input string) string {
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(input)))
}

// TextPtr applies Text to a non-nil pointer.
func TextPtr(input *string) *string {
	if input == nil {
		return nil
	}
	s := Text(*input)
	return &s
}
