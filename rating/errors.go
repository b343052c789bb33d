package rating

import "fmt"

// InvalidRatingError reports a PD or LGD code outside the master scales.
type InvalidRatingError struct {
	Kind string // "PD" or "LGD"
	Code string
}

func (e *InvalidRatingError) Error() string {
	return fmt.Sprintf("rating: unknown %s code %q", e.Kind, e.Code)
}
