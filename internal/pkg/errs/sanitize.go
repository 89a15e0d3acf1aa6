package errs

import "strings"

// sanitize removes line breaks from error messages so that a single error
// always renders as a single log line.
func sanitize(message string) string {
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(message)
}
