package knn

import (
	"fmt"

	"github.com/abhisek/modelcheck/internal/spec"
)

// LabelType is the single label type a classifier predicts.
type LabelType int

const (
	Unresolved LabelType = iota
	Int64Label
	StringLabel
)

// LabelTypes returns every resolvable label type.
func LabelTypes() []LabelType {
	return []LabelType{Int64Label, StringLabel}
}

func (t LabelType) String() string {
	switch t {
	case Int64Label:
		return "int64"
	case StringLabel:
		return "string"
	default:
		return "unresolved"
	}
}

// labelTypeOf maps a label container to its type; nil maps to Unresolved.
func labelTypeOf(l spec.LabelSet) LabelType {
	switch l.(type) {
	case *spec.Int64Labels:
		return Int64Label
	case *spec.StringLabels:
		return StringLabel
	}
	return Unresolved
}

func defaultTypeOf(d spec.DefaultLabel) LabelType {
	switch d.(type) {
	case *spec.DefaultInt64Label:
		return Int64Label
	case *spec.DefaultStringLabel:
		return StringLabel
	}
	return Unresolved
}

// labelPair is the (class labels, default label) type combination.
type labelPair struct {
	labels   LabelType
	fallback LabelType
}

type labelOutcome struct {
	resolved LabelType
	reason   LabelTypeReason // zero when resolved
}

// labelResolution holds one row per labelPair.
var labelResolution = map[labelPair]labelOutcome{
	{Unresolved, Unresolved}:   {Unresolved, Unresolvable},
	{Unresolved, Int64Label}:   {Int64Label, 0},
	{Unresolved, StringLabel}:  {StringLabel, 0},
	{Int64Label, Unresolved}:   {Int64Label, 0},
	{Int64Label, Int64Label}:   {Int64Label, 0},
	{Int64Label, StringLabel}:  {Unresolved, Conflicting},
	{StringLabel, Unresolved}:  {StringLabel, 0},
	{StringLabel, Int64Label}:  {Unresolved, Conflicting},
	{StringLabel, StringLabel}: {StringLabel, 0},
}

// ResolveLabelType derives the classifier's label type from the populated
// label container and default label, then checks it against the declared
// predicted output. OtherOutput skips the output check.
func ResolveLabelType(c *spec.ClassifierSpec, declared spec.OutputType) (LabelType, error) {
	pair := labelPair{labels: labelTypeOf(c.Labels), fallback: defaultTypeOf(c.Default)}
	out, ok := labelResolution[pair]
	if !ok {
		return Unresolved, &LabelTypeError{
			Reason:  Unresolvable,
			Message: fmt.Sprintf("no resolution for class labels %s with default label %s", pair.labels, pair.fallback),
		}
	}

	switch out.reason {
	case Unresolvable:
		return Unresolved, &LabelTypeError{
			Reason:  Unresolvable,
			Message: "neither class labels nor a default label is set",
		}
	case Conflicting:
		return Unresolved, &LabelTypeError{
			Reason:  Conflicting,
			Message: fmt.Sprintf("class labels are %s but the default label is %s", pair.labels, pair.fallback),
		}
	}

	if want, ok := expectedLabelType(declared); ok && want != out.resolved {
		return Unresolved, &LabelTypeError{
			Reason:  Conflicting,
			Message: fmt.Sprintf("labels are %s but the predicted output is declared %s", out.resolved, declared),
		}
	}
	return out.resolved, nil
}

func expectedLabelType(o spec.OutputType) (LabelType, bool) {
	switch o {
	case spec.StringOutput:
		return StringLabel, true
	case spec.Int64Output:
		return Int64Label, true
	default:
		return Unresolved, false
	}
}
