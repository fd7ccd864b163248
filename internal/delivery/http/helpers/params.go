package helpers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the only accepted event date format: DD-MM-YYYY.
const DateLayout = "02-01-2006"

// IsValidDate reports whether s is a real calendar date in DD-MM-YYYY form.
func IsValidDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ParseID parses a positive int64 id. name is used in the error message.
func ParseID(name, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return id, nil
}

// PathID reads and parses the named path value.
func PathID(r *http.Request, name string) (int64, error) {
	return ParseID(name, r.PathValue(name))
}

// QueryID reads and parses the named query parameter.
func QueryID(r *http.Request, name string) (int64, error) {
	return ParseID(name, r.URL.Query().Get(name))
}

// ParseAmount parses a signed integer amount in minor currency units.
func ParseAmount(name, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", name)
	}
	return v, nil
}
