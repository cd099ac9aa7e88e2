package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrEmptyInput is returned when the contract text is empty or whitespace.
// The provider is never invoked in that case.
var ErrEmptyInput = errors.New("contract text is empty")

// FieldError locates one schema violation in the returned document.
type FieldError struct {
	// Field is the instance location of the offending value, e.g.
	// "/payment_milestones/0/amount". Empty means the document root.
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	field := e.Field
	if field == "" {
		field = "/"
	}
	return fmt.Sprintf("%s: %s", field, e.Message)
}

// ValidationError reports that the provider returned data that does not
// conform to the contract analysis schema.
type ValidationError struct {
	Causes []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Causes) == 0 {
		return "contract analysis does not match schema"
	}
	parts := make([]string, len(e.Causes))
	for i, c := range e.Causes {
		parts[i] = c.String()
	}
	return "contract analysis does not match schema: " + strings.Join(parts, "; ")
}

// ExternalError reports a collaborator-side failure: network errors, quota,
// malformed responses, or a broken schema document.
type ExternalError struct {
	Provider string
	Err      error
}

func (e *ExternalError) Error() string {
	return fmt.Sprintf("extraction failed (%s): %v", e.Provider, e.Err)
}

func (e *ExternalError) Unwrap() error {
	return e.Err
}

// newValidationError flattens a jsonschema validation tree into per-field
// causes. Leaf causes carry the most specific instance locations.
func newValidationError(err *jsonschema.ValidationError) *ValidationError {
	ve := &ValidationError{}
	var walk func(*jsonschema.ValidationError)
	walk = func(v *jsonschema.ValidationError) {
		if len(v.Causes) == 0 {
			ve.Causes = append(ve.Causes, FieldError{
				Field:   v.InstanceLocation,
				Message: v.Message,
			})
			return
		}
		for _, c := range v.Causes {
			walk(c)
		}
	}
	walk(err)
	return ve
}
