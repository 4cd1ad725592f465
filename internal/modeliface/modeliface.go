// Package modeliface checks the generic model description and derives the
// declared type of the predicted output.
package modeliface

import (
	"fmt"
	"strings"

	"github.com/abhisek/modelcheck/internal/spec"
)

// InterfaceError lists every problem found in a model description.
type InterfaceError struct {
	Problems []string
}

func (e *InterfaceError) Error() string {
	return fmt.Sprintf("model interface validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// Validate checks inputs, outputs and the predicted feature name.
func Validate(desc spec.Description) error {
	return asError(problems(desc))
}

// ValidateClassifier is Validate plus the classifier rule that the
// predicted feature must be named.
func ValidateClassifier(desc spec.Description) error {
	errs := problems(desc)
	if desc.PredictedFeatureName == "" {
		errs = append(errs, "classifier must name its predicted feature")
	}
	return asError(errs)
}

func asError(problems []string) error {
	if len(problems) > 0 {
		return &InterfaceError{Problems: problems}
	}
	return nil
}

func problems(desc spec.Description) []string {
	var errs []string

	if len(desc.Inputs) == 0 {
		errs = append(errs, "model must declare at least one input")
	}
	if len(desc.Outputs) == 0 {
		errs = append(errs, "model must declare at least one output")
	}

	errs = append(errs, checkFeatures("input", desc.Inputs)...)
	errs = append(errs, checkFeatures("output", desc.Outputs)...)

	if desc.PredictedFeatureName != "" {
		if _, ok := findFeature(desc.Outputs, desc.PredictedFeatureName); !ok {
			errs = append(errs, fmt.Sprintf("predicted feature %q is not a declared output", desc.PredictedFeatureName))
		}
	}
	return errs
}

func checkFeatures(role string, features []spec.Feature) []string {
	var errs []string
	seen := make(map[string]bool, len(features))
	for i, f := range features {
		if f.Name == "" {
			errs = append(errs, fmt.Sprintf("%s %d has no name", role, i))
			continue
		}
		if seen[f.Name] {
			errs = append(errs, fmt.Sprintf("duplicate %s name: %q", role, f.Name))
		}
		seen[f.Name] = true
		if f.Type.Kind == spec.FeatureUnknown {
			errs = append(errs, fmt.Sprintf("%s %q has no type", role, f.Name))
		}
	}
	return errs
}

func findFeature(features []spec.Feature, name string) (spec.Feature, bool) {
	for _, f := range features {
		if f.Name == name {
			return f, true
		}
	}
	return spec.Feature{}, false
}

// DeclaredOutput returns the declared type of the predicted feature.
// A missing or non-scalar predicted feature yields OtherOutput.
func DeclaredOutput(desc spec.Description) spec.OutputType {
	f, ok := findFeature(desc.Outputs, desc.PredictedFeatureName)
	if !ok {
		return spec.OtherOutput
	}
	switch f.Type.Kind {
	case spec.FeatureString:
		return spec.StringOutput
	case spec.FeatureInt64:
		return spec.Int64Output
	default:
		return spec.OtherOutput
	}
}
