package check

import (
	"fmt"
	"reflect"
	"strings"
)

// Validation error codes. Each code identifies the kind of constraint that
// was violated, mirroring the error taxonomy used across the module.
const (
	CodeShapeMismatch       = "SHAPE_MISMATCH"
	CodeTypeMismatch        = "TYPE_MISMATCH"
	CodeMembershipViolation = "MEMBERSHIP_VIOLATION"
	CodeThresholdViolation  = "THRESHOLD_VIOLATION"
	CodeInvalidArgument     = "INVALID_ARGUMENT"
)

// ValidationError describes a single precondition violation.
type ValidationError struct {
	Code    string      `json:"code"`
	Op      string      `json:"op"`              // operation that requested the check
	Value   interface{} `json:"value,omitempty"` // offending value (may be nil)
	Index   int         `json:"index"`           // position in the checked batch, -1 if not positional
	Message string      `json:"message"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("%s: %s", e.Op, e.Message))
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}
	if e.Index >= 0 {
		parts = append(parts, fmt.Sprintf("at index %d", e.Index))
	}
	parts = append(parts, fmt.Sprintf("(%s)", e.Code))
	return strings.Join(parts, " ")
}

// New creates a ValidationError with the given code and message.
func New(code, op, message string) *ValidationError {
	return &ValidationError{Code: code, Op: op, Index: -1, Message: message}
}

// NewShapeMismatch reports two paired collections with unequal lengths.
func NewShapeMismatch(op string, want, got int) *ValidationError {
	return &ValidationError{
		Code:    CodeShapeMismatch,
		Op:      op,
		Value:   got,
		Index:   -1,
		Message: fmt.Sprintf("paired inputs must have equal length, want %d got %d", want, got),
	}
}

// NewTypeMismatch reports a value of an unexpected kind at the given index.
func NewTypeMismatch(op string, value interface{}, index int, expected string) *ValidationError {
	return &ValidationError{
		Code:    CodeTypeMismatch,
		Op:      op,
		Value:   value,
		Index:   index,
		Message: fmt.Sprintf("expected %s, got %T", expected, value),
	}
}

// NewInvalidArgument reports a parameter outside its documented domain.
func NewInvalidArgument(op string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Code:    CodeInvalidArgument,
		Op:      op,
		Value:   value,
		Index:   -1,
		Message: message,
	}
}

// EqualLengths verifies that every given length is equal. The index of a
// reported violation is the position of the first length that differs from
// the first one.
func EqualLengths(op string, lengths ...int) error {
	for i := 1; i < len(lengths); i++ {
		if lengths[i] != lengths[0] {
			err := NewShapeMismatch(op, lengths[0], lengths[i])
			err.Index = i
			return err
		}
	}
	return nil
}

// Numeric reports whether a value is of a numeric kind. Integers of any
// width and floats qualify; bool and string do not.
func Numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// AllNumeric verifies that every value in the batch is numeric.
func AllNumeric(op string, values []interface{}) error {
	for i, v := range values {
		if _, ok := Numeric(v); !ok {
			return NewTypeMismatch(op, v, i, "numeric value")
		}
	}
	return nil
}

// AllIntegers verifies that every value in the batch is an integer.
// Floats with a zero fractional part do not qualify.
func AllIntegers(op string, values []interface{}) error {
	for i, v := range values {
		switch v.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		default:
			return NewTypeMismatch(op, v, i, "integer value")
		}
	}
	return nil
}

// AllStrings verifies that every value in the batch is a string.
func AllStrings(op string, values []interface{}) error {
	for i, v := range values {
		if _, ok := v.(string); !ok {
			return NewTypeMismatch(op, v, i, "string value")
		}
	}
	return nil
}

// AllBools verifies that every value in the batch is a bool.
func AllBools(op string, values []interface{}) error {
	for i, v := range values {
		if _, ok := v.(bool); !ok {
			return NewTypeMismatch(op, v, i, "boolean value")
		}
	}
	return nil
}

// AllPresent verifies that every value in the batch is non-nil. A typed nil
// pointer stored in an interface counts as absent. Used by the list
// operations to reject nil frames before transforming a batch.
func AllPresent(op string, values []interface{}) error {
	for i, v := range values {
		if v == nil {
			return NewTypeMismatch(op, v, i, "non-nil value")
		}
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
			if rv.IsNil() {
				return NewTypeMismatch(op, v, i, "non-nil value")
			}
		}
	}
	return nil
}

// InStringSet verifies that value is one of the allowed strings.
func InStringSet(op, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ValidationError{
		Code:    CodeMembershipViolation,
		Op:      op,
		Value:   value,
		Index:   -1,
		Message: fmt.Sprintf("value %q not in allowed set %v", value, allowed),
	}
}

// InIntSet verifies that value is one of the allowed integers.
func InIntSet(op string, value int, allowed []int) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ValidationError{
		Code:    CodeMembershipViolation,
		Op:      op,
		Value:   value,
		Index:   -1,
		Message: fmt.Sprintf("value %d not in allowed set %v", value, allowed),
	}
}

// Direction selects which side of a threshold is acceptable.
type Direction string

const (
	// AtMost accepts values less than or equal to the bound.
	AtMost Direction = "at_most"
	// AtLeast accepts values greater than or equal to the bound.
	AtLeast Direction = "at_least"
)

// Threshold verifies that every value respects the bound in the given
// direction. The boundary itself is always acceptable.
func Threshold(op string, values []float64, bound float64, dir Direction) error {
	if err := InStringSet(op, string(dir), []string{string(AtMost), string(AtLeast)}); err != nil {
		return err
	}
	for i, v := range values {
		switch dir {
		case AtMost:
			if v > bound {
				return &ValidationError{
					Code:    CodeThresholdViolation,
					Op:      op,
					Value:   v,
					Index:   i,
					Message: fmt.Sprintf("value %v is over the maximum of %v", v, bound),
				}
			}
		case AtLeast:
			if v < bound {
				return &ValidationError{
					Code:    CodeThresholdViolation,
					Op:      op,
					Value:   v,
					Index:   i,
					Message: fmt.Sprintf("value %v is under the minimum of %v", v, bound),
				}
			}
		}
	}
	return nil
}
