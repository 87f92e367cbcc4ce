package rounds

import "fmt"

// ConfigurationError reports an invalid round definition. It is the only
// error this package raises: bad stored configuration must be corrected at
// the source, so the error names the offending round.
type ConfigurationError struct {
	Position int
	Name     string
	Reason   string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("invalid round configuration at position %d (%q): %s", e.Position, e.Name, e.Reason)
}
