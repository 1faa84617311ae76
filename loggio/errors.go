package loggio

import "fmt"

// InvalidTimezoneError reports a timezone identifier that the IANA database
// does not recognize. It is returned at logger construction or
// reconfiguration time, never at emit time.
type InvalidTimezoneError struct {
	ID string
}

func (e *InvalidTimezoneError) Error() string {
	return fmt.Sprintf("loggio: invalid timezone %q", e.ID)
}

// FormatMismatchError reports a template whose placeholders cannot be
// satisfied by the supplied arguments. It is recovered at the call site:
// the record is still emitted with a fallback body.
type FormatMismatchError struct {
	Template string
	Detail   string
}

func (e *FormatMismatchError) Error() string {
	return fmt.Sprintf("loggio: format mismatch in %q: %s", e.Template, e.Detail)
}
