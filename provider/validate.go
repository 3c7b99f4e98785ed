package provider

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for model options.
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report option names (the `option` struct tag) rather than Go field
	// names in validation errors.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("option"); name != "" {
			return name
		}
		return fld.Name
	})
}

// runTagChecks validates struct tags and converts the first failure into a
// *ValidationError. Fail-fast: only the first violation is reported.
func runTagChecks(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ValidationError{
			Field:  verrs[0].Field(),
			Reason: tagReason(verrs[0]),
		}
	}
	return err
}

func tagReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// checkLogitBias verifies that every key parses as an integer token id and
// every bias value lies in [-100, 100].
func checkLogitBias(bias map[string]float64) error {
	for token, weight := range bias {
		if _, err := strconv.Atoi(token); err != nil {
			return &ValidationError{
				Field:  "logitBias",
				Reason: fmt.Sprintf("key %q is not an integer token id", token),
			}
		}
		if weight < -100 || weight > 100 {
			return &ValidationError{Field: "logitBias", Reason: "out of range"}
		}
	}
	return nil
}

// checkLogprobs accepts a bool, or an integral numeric value >= 0. Anything
// else is rejected.
func checkLogprobs(v any) error {
	switch n := v.(type) {
	case nil, bool:
		return nil
	case int:
		if n < 0 {
			return &ValidationError{Field: "logprobs", Reason: "must not be negative"}
		}
	case int64:
		if n < 0 {
			return &ValidationError{Field: "logprobs", Reason: "must not be negative"}
		}
	case float64:
		if n != math.Trunc(n) {
			return &ValidationError{Field: "logprobs", Reason: "must be a whole number"}
		}
		if n < 0 {
			return &ValidationError{Field: "logprobs", Reason: "must not be negative"}
		}
	default:
		return &ValidationError{
			Field:  "logprobs",
			Reason: fmt.Sprintf("unsupported type %T, want bool or int", v),
		}
	}
	return nil
}
