package stats

import (
	"fmt"
	"strings"
)

// NoDataError reports that a filter combination matched no deliveries. It is
// an expected condition, distinguishable from a genuine zero-valued result:
// the entity exists but the requested slice of the dataset is empty.
type NoDataError struct {
	// Filters names each filter that was applied, e.g. "player=V Kohli",
	// "season=2020".
	Filters []string
}

func (e *NoDataError) Error() string {
	if len(e.Filters) == 0 {
		return "no matching data"
	}
	return fmt.Sprintf("no matching data for %s", strings.Join(e.Filters, ", "))
}

// InvalidParameterError reports a parameter outside its valid domain, such
// as a season before the dataset begins or an unsupported stat name.
type InvalidParameterError struct {
	Param  string
	Value  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Param, e.Value, e.Reason)
}

func noData(filters ...string) error {
	return &NoDataError{Filters: filters}
}
