// Package checker validates a decoded model document end to end: the
// specification version, the generic interface and the model-kind body.
package checker

import (
	"errors"
	"fmt"

	"github.com/abhisek/modelcheck/internal/document"
	"github.com/abhisek/modelcheck/internal/knn"
	"github.com/abhisek/modelcheck/internal/modeliface"
	"github.com/abhisek/modelcheck/internal/spec"
)

// MinKNNSpecificationVersion is the first specification version that can
// carry a nearest-neighbors classifier.
const MinKNNSpecificationVersion = 4

// UnsupportedModelError is returned for documents whose model kind this
// checker cannot validate.
type UnsupportedModelError struct {
	Kind string
}

func (e *UnsupportedModelError) Error() string {
	if e.Kind == "" {
		return "document does not contain a model body"
	}
	return fmt.Sprintf("unsupported model kind %q", e.Kind)
}

// VersionError is returned when the specification version is too old for
// the model kind.
type VersionError struct {
	Kind    string
	Got     int
	Minimum int
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%s requires specification version >= %d, got %d", e.Kind, e.Minimum, e.Got)
}

// InputShapeError is returned when the declared input does not match the
// dimensionality of the reference set.
type InputShapeError struct {
	Input string
	Shape []int64
	Want  int
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("input %q has shape %v, want a single dimension of %d", e.Input, e.Shape, e.Want)
}

// Check returns nil when m is valid.
func Check(m *spec.Model) error {
	if m == nil {
		return errors.New("no model")
	}
	if m.Kind != document.KindKNearestNeighborsClassifier || m.KNearestNeighborsClassifier == nil {
		return &UnsupportedModelError{Kind: m.Kind}
	}
	if m.SpecificationVersion < MinKNNSpecificationVersion {
		return &VersionError{
			Kind:    m.Kind,
			Got:     m.SpecificationVersion,
			Minimum: MinKNNSpecificationVersion,
		}
	}
	if err := modeliface.ValidateClassifier(m.Description); err != nil {
		return err
	}

	c := m.KNearestNeighborsClassifier
	if err := knn.Validate(c, modeliface.DeclaredOutput(m.Description)); err != nil {
		return err
	}
	return checkInputShape(m.Description, c)
}

// checkInputShape requires every multi-array input with a declared shape
// to be a vector of the index's dimensionality.
func checkInputShape(desc spec.Description, c *spec.ClassifierSpec) error {
	for _, in := range desc.Inputs {
		if in.Type.Kind != spec.FeatureMultiArray || len(in.Type.Shape) == 0 {
			continue
		}
		if len(in.Type.Shape) != 1 || in.Type.Shape[0] != int64(c.Index.NumberOfDimensions) {
			return &InputShapeError{Input: in.Name, Shape: in.Type.Shape, Want: c.Index.NumberOfDimensions}
		}
	}
	return nil
}

// Kind returns a short, stable label for err suitable for storage and
// display: the validation error kind for classifier failures, otherwise
// the error category.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	var (
		verr  *knn.ValidationError
		derr  *document.DecodeError
		ierr  *modeliface.InterfaceError
		uerr  *UnsupportedModelError
		vserr *VersionError
		serr  *InputShapeError
	)
	switch {
	case errors.As(err, &verr):
		return verr.Kind.String()
	case errors.As(err, &derr):
		return "decode-" + string(derr.Stage)
	case errors.As(err, &ierr):
		return "invalid-interface"
	case errors.As(err, &uerr):
		return "unsupported-model"
	case errors.As(err, &vserr):
		return "unsupported-version"
	case errors.As(err, &serr):
		return "input-shape-mismatch"
	default:
		return "error"
	}
}
