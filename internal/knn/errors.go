package knn

import "fmt"

// ErrorKind classifies why a classifier specification was rejected.
type ErrorKind int

const (
	InvalidK ErrorKind = iota + 1
	MissingDimensionality
	DimensionMismatch
	MissingIndexStructure
	InvalidLeafSize
	MissingDistanceFunction
	MissingWeightingScheme
	InvalidLabelType
	LabelCountMismatch
)

var kindNames = map[ErrorKind]string{
	InvalidK:                "invalid-k",
	MissingDimensionality:   "missing-dimensionality",
	DimensionMismatch:       "dimension-mismatch",
	MissingIndexStructure:   "missing-index-structure",
	InvalidLeafSize:         "invalid-leaf-size",
	MissingDistanceFunction: "missing-distance-function",
	MissingWeightingScheme:  "missing-weighting-scheme",
	InvalidLabelType:        "invalid-label-type",
	LabelCountMismatch:      "label-count-mismatch",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Kinds returns every error kind in check order.
func Kinds() []ErrorKind {
	return []ErrorKind{
		InvalidK,
		MissingDimensionality,
		DimensionMismatch,
		MissingIndexStructure,
		InvalidLeafSize,
		MissingDistanceFunction,
		MissingWeightingScheme,
		InvalidLabelType,
		LabelCountMismatch,
	}
}

// ValidationError reports the first failed check.
type ValidationError struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("nearest neighbors classifier: %s", e.Kind)
	}
	return fmt.Sprintf("nearest neighbors classifier: %s: %s", e.Kind, e.Detail)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Is matches another *ValidationError of the same kind, so the
// sentinels below work with errors.Is.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrInvalidK                = &ValidationError{Kind: InvalidK}
	ErrMissingDimensionality   = &ValidationError{Kind: MissingDimensionality}
	ErrDimensionMismatch       = &ValidationError{Kind: DimensionMismatch}
	ErrMissingIndexStructure   = &ValidationError{Kind: MissingIndexStructure}
	ErrInvalidLeafSize         = &ValidationError{Kind: InvalidLeafSize}
	ErrMissingDistanceFunction = &ValidationError{Kind: MissingDistanceFunction}
	ErrMissingWeightingScheme  = &ValidationError{Kind: MissingWeightingScheme}
	ErrInvalidLabelType        = &ValidationError{Kind: InvalidLabelType}
	ErrLabelCountMismatch      = &ValidationError{Kind: LabelCountMismatch}
)

func failf(kind ErrorKind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// LabelTypeReason says why label resolution failed.
type LabelTypeReason int

const (
	Unresolvable LabelTypeReason = iota + 1
	Conflicting
)

func (r LabelTypeReason) String() string {
	switch r {
	case Unresolvable:
		return "unresolved"
	case Conflicting:
		return "conflict"
	default:
		return "unknown"
	}
}

// LabelTypeError is returned by ResolveLabelType.
type LabelTypeError struct {
	Reason  LabelTypeReason
	Message string
}

func (e *LabelTypeError) Error() string {
	return fmt.Sprintf("label type %s: %s", e.Reason, e.Message)
}
