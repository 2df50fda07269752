package report

import "encoding/json"

// JSONFormatter formats a Report as indented JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format converts a Report to JSON.
func (f *JSONFormatter) Format(r *Report) string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		// Report contains only plain data types; marshaling cannot fail.
		return "{}"
	}
	return string(data) + "\n"
}

// Ensure JSONFormatter implements Formatter
var _ Formatter = (*JSONFormatter)(nil)
