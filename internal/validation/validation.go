// Package validation checks patient and user submissions field by field.
// Every rule runs before any write happens and all failing fields are
// reported together. Messages are Brazilian Portuguese, keyed by field.
package validation

// Errors maps a field name to its localized error message.
type Errors map[string]string

// Add records a message for a field. The first failing rule per field wins.
func (e Errors) Add(field, message string) {
	if _, ok := e[field]; !ok {
		e[field] = message
	}
}

// Any reports whether at least one field failed.
func (e Errors) Any() bool {
	return len(e) > 0
}
