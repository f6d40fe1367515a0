package app

import (
	"errors"

	"github.com/4chain-ag/go-hit-simulator/pkg/hit"
)

// FormMatcher searches for HIT compliant transaction forms.
type FormMatcher interface {
	SimulateStandardForm(values []int64, spend int64) (hit.Form, error)
	SimulateAlternateForm(values []int64, spend int64) (hit.Form, error)
}

// FormDTO is a matched transaction form.
type FormDTO struct {
	Kind    string
	Inputs  []int64
	Outputs []int64
}

// FormService validates form requests and delegates the search to a FormMatcher.
type FormService struct {
	matcher FormMatcher
}

// StandardForm returns the standard form spending spend from values.
// Returns an unprocessable error when no standard form exists.
func (s *FormService) StandardForm(values []int64, spend int64) (*FormDTO, error) {
	if err := validateFormRequest(values, spend); err != nil {
		return nil, err
	}

	form, err := s.matcher.SimulateStandardForm(values, spend)
	if err != nil {
		return nil, NewFormMatcherError(err)
	}
	return NewFormDTO(form), nil
}

// AlternateForm returns the alternate form spending spend from values.
// Returns an unprocessable error when no alternate form exists.
func (s *FormService) AlternateForm(values []int64, spend int64) (*FormDTO, error) {
	if err := validateFormRequest(values, spend); err != nil {
		return nil, err
	}

	form, err := s.matcher.SimulateAlternateForm(values, spend)
	if err != nil {
		return nil, NewFormMatcherError(err)
	}
	return NewFormDTO(form), nil
}

// NewFormService constructs a FormService with the given matcher.
// Panics if the matcher is nil.
func NewFormService(matcher FormMatcher) *FormService {
	if matcher == nil {
		panic("form matcher is nil")
	}
	return &FormService{matcher: matcher}
}

// NewFormDTO converts a matched form into its transport-friendly shape.
func NewFormDTO(form hit.Form) *FormDTO {
	return &FormDTO{
		Kind:    string(form.Kind),
		Inputs:  form.Inputs,
		Outputs: form.Outputs,
	}
}

func validateFormRequest(values []int64, spend int64) error {
	if len(values) == 0 {
		return NewIncorrectInputWithFieldError("values")
	}
	if spend <= 0 {
		return NewIncorrectInputWithFieldError("spend")
	}
	for _, v := range values {
		if v <= 0 {
			return NewIncorrectInputWithFieldError("values")
		}
	}
	return nil
}

// NewIncorrectInputWithFieldError returns an incorrect input error naming the offending request field.
func NewIncorrectInputWithFieldError(field string) Error {
	return NewIncorrectInputError(
		"invalid or missing request field: "+field,
		"The request field '"+field+"' is missing or invalid. Please verify the request content and try again.",
	)
}

// NewFormMatcherError translates a matcher failure. Exhausted values are reported as unprocessable,
// anything else as a provider failure.
func NewFormMatcherError(err error) Error {
	if errors.Is(err, hit.ErrNotEnoughFunds) {
		return NewUnprocessableError(
			err.Error(),
			"No compliant transaction form can be built from the given values for the requested spend.",
		)
	}
	return NewProviderFailureError(
		err.Error(),
		"Unable to match the transaction form due to an internal error. Please try again later or contact the support team.",
	)
}
