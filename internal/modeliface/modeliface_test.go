package modeliface

import (
	"strings"
	"testing"

	"github.com/abhisek/modelcheck/internal/spec"
)

func knnDescription() spec.Description {
	return spec.Description{
		Inputs: []spec.Feature{
			{Name: "input", Type: spec.FeatureType{Kind: spec.FeatureMultiArray, Shape: []int64{4}, DataType: "FLOAT32"}},
		},
		Outputs: []spec.Feature{
			{Name: "output", Type: spec.FeatureType{Kind: spec.FeatureString}},
		},
		PredictedFeatureName: "output",
	}
}

func TestValidate_Good(t *testing.T) {
	if err := Validate(knnDescription()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*spec.Description)
		want   string
	}{
		{"no inputs", func(d *spec.Description) { d.Inputs = nil }, "at least one input"},
		{"no outputs", func(d *spec.Description) { d.Outputs = nil; d.PredictedFeatureName = "" }, "at least one output"},
		{"unnamed input", func(d *spec.Description) { d.Inputs[0].Name = "" }, "input 0 has no name"},
		{"duplicate output", func(d *spec.Description) {
			d.Outputs = append(d.Outputs, spec.Feature{Name: "output", Type: spec.FeatureType{Kind: spec.FeatureString}})
		}, "duplicate output"},
		{"untyped output", func(d *spec.Description) { d.Outputs[0].Type = spec.FeatureType{} }, "has no type"},
		{"unknown predicted feature", func(d *spec.Description) { d.PredictedFeatureName = "label" }, `"label" is not a declared output`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := knnDescription()
			tt.mutate(&d)
			err := Validate(d)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should mention %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	err := Validate(spec.Description{PredictedFeatureName: "x"})
	ierr, ok := err.(*InterfaceError)
	if !ok {
		t.Fatalf("expected *InterfaceError, got %T", err)
	}
	if len(ierr.Problems) != 3 {
		t.Errorf("got %d problems, want 3: %v", len(ierr.Problems), ierr.Problems)
	}
}

func TestValidateClassifier_RequiresPredictedFeature(t *testing.T) {
	d := knnDescription()
	if err := ValidateClassifier(d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d.PredictedFeatureName = ""
	if err := Validate(d); err != nil {
		t.Fatalf("generic validation should allow a missing predicted feature: %v", err)
	}
	err := ValidateClassifier(d)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "must name its predicted feature") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDeclaredOutput(t *testing.T) {
	tests := []struct {
		kind spec.FeatureKind
		want spec.OutputType
	}{
		{spec.FeatureString, spec.StringOutput},
		{spec.FeatureInt64, spec.Int64Output},
		{spec.FeatureDouble, spec.OtherOutput},
		{spec.FeatureDictionary, spec.OtherOutput},
	}
	for _, tt := range tests {
		d := knnDescription()
		d.Outputs[0].Type.Kind = tt.kind
		if got := DeclaredOutput(d); got != tt.want {
			t.Errorf("DeclaredOutput(%s) = %s, want %s", tt.kind, got, tt.want)
		}
	}

	d := knnDescription()
	d.PredictedFeatureName = ""
	if got := DeclaredOutput(d); got != spec.OtherOutput {
		t.Errorf("DeclaredOutput without predicted feature = %s, want other", got)
	}
}
