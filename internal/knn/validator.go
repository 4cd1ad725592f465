// Package knn validates nearest-neighbors classifier specifications.
//
// Validate runs an ordered list of checks and returns the first failure.
// Every check is a pure function of the specification, so concurrent
// calls on different (or the same) specifications need no coordination.
package knn

import (
	"github.com/abhisek/modelcheck/internal/spec"
)

type check func(c *spec.ClassifierSpec, declared spec.OutputType) error

var checks = []check{
	checkK,
	checkIndex,
	checkWeighting,
	checkLabelType,
	checkLabelCount,
}

// Validate returns nil when the classifier is valid. declared is the
// predicted output type from the model description.
func Validate(c *spec.ClassifierSpec, declared spec.OutputType) error {
	if c == nil {
		return failf(InvalidK, "classifier is missing")
	}
	for _, fn := range checks {
		if err := fn(c, declared); err != nil {
			return err
		}
	}
	return nil
}

func checkK(c *spec.ClassifierSpec, _ spec.OutputType) error {
	if c.K <= 0 {
		return failf(InvalidK, "k must be > 0, got %d", c.K)
	}
	return nil
}

func checkIndex(c *spec.ClassifierSpec, _ spec.OutputType) error {
	return ValidateIndex(&c.Index)
}

func checkWeighting(c *spec.ClassifierSpec, _ spec.OutputType) error {
	if c.Weighting == nil {
		return failf(MissingWeightingScheme, "no weighting scheme is selected")
	}
	return nil
}

func checkLabelType(c *spec.ClassifierSpec, declared spec.OutputType) error {
	if _, err := ResolveLabelType(c, declared); err != nil {
		return &ValidationError{Kind: InvalidLabelType, Detail: err.Error(), Err: err}
	}
	return nil
}

// checkLabelCount is skipped for an empty reference set; such a model
// predicts its default label.
func checkLabelCount(c *spec.ClassifierSpec, _ spec.OutputType) error {
	n := c.PointCount()
	if n == 0 {
		return nil
	}
	got := 0
	if c.Labels != nil {
		got = c.Labels.Len()
	}
	if got != n {
		return failf(LabelCountMismatch, "%d labels for %d reference points", got, n)
	}
	return nil
}
