package checker

import (
	"errors"
	"fmt"
	"testing"

	"github.com/abhisek/modelcheck/internal/document"
	"github.com/abhisek/modelcheck/internal/knn"
	"github.com/abhisek/modelcheck/internal/modeliface"
	"github.com/abhisek/modelcheck/internal/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func knnModel() *spec.Model {
	points := [][]float32{
		{0, 0, 0, 0}, {1, 0, 0, 0}, {2.1, 0, 0, 0},
		{0, 0.1, 0, 0}, {1, 0, 0.1, 0}, {2.1, 0, 0, 0.1},
	}
	return &spec.Model{
		SpecificationVersion: 4,
		Kind:                 document.KindKNearestNeighborsClassifier,
		Description: spec.Description{
			Inputs: []spec.Feature{{
				Name: "input",
				Type: spec.FeatureType{Kind: spec.FeatureMultiArray, Shape: []int64{4}, DataType: "FLOAT32"},
			}},
			Outputs: []spec.Feature{{
				Name: "output",
				Type: spec.FeatureType{Kind: spec.FeatureString},
			}},
			PredictedFeatureName: "output",
		},
		KNearestNeighborsClassifier: &spec.ClassifierSpec{
			K:         3,
			Weighting: &spec.UniformWeighting{},
			Index: spec.IndexSpec{
				NumberOfDimensions: 4,
				Points:             points,
				Distance:           &spec.SquaredEuclideanDistance{},
				Structure:          &spec.KDTreeIndex{LeafSize: 30},
			},
			Labels: &spec.StringLabels{Values: []string{"zero", "zero", "zero", "zero", "zero", "zero"}},
		},
	}
}

func TestCheck_Accept(t *testing.T) {
	require.NoError(t, Check(knnModel()))
}

func TestCheck_RejectNoDimensions(t *testing.T) {
	m := knnModel()
	m.KNearestNeighborsClassifier.Index.NumberOfDimensions = 0
	err := Check(m)
	assert.ErrorIs(t, err, knn.ErrMissingDimensionality)
	assert.Equal(t, "missing-dimensionality", Kind(err))
}

func TestCheck_DeclaredOutputFeedsLabelCheck(t *testing.T) {
	m := knnModel()
	m.Description.Outputs[0].Type = spec.FeatureType{Kind: spec.FeatureInt64}
	err := Check(m)
	assert.ErrorIs(t, err, knn.ErrInvalidLabelType)
}

func TestCheck_Unsupported(t *testing.T) {
	m := knnModel()
	m.Kind = "neuralNetwork"
	m.KNearestNeighborsClassifier = nil

	err := Check(m)
	var uerr *UnsupportedModelError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "neuralNetwork", uerr.Kind)
	assert.Equal(t, "unsupported-model", Kind(err))

	err = Check(&spec.Model{SpecificationVersion: 4})
	assert.EqualError(t, err, "document does not contain a model body")
}

func TestCheck_Version(t *testing.T) {
	m := knnModel()
	m.SpecificationVersion = 3
	err := Check(m)
	var verr *VersionError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 3, verr.Got)
	assert.Equal(t, "unsupported-version", Kind(err))
}

func TestCheck_Interface(t *testing.T) {
	m := knnModel()
	m.Description.PredictedFeatureName = "missing"
	err := Check(m)
	var ierr *modeliface.InterfaceError
	require.True(t, errors.As(err, &ierr))
	assert.Equal(t, "invalid-interface", Kind(err))
}

func TestCheck_EmptyIndexWithoutDimensionsRejected(t *testing.T) {
	// Empty reference set with a default label but no dimensionality.
	m := knnModel()
	m.Description.Inputs[0].Type.Shape = nil
	c := m.KNearestNeighborsClassifier
	c.Index = spec.IndexSpec{
		Distance:  &spec.SquaredEuclideanDistance{},
		Structure: &spec.KDTreeIndex{LeafSize: 30},
	}
	c.Labels = nil
	c.Default = &spec.DefaultStringLabel{Value: "Default"}

	err := Check(m)
	assert.ErrorIs(t, err, knn.ErrMissingDimensionality)

	c.Index.NumberOfDimensions = 4
	require.NoError(t, Check(m))
}

func TestCheck_PredictedFeatureRequired(t *testing.T) {
	// Without a predicted feature the declared-output check could not run.
	m := knnModel()
	m.Description.PredictedFeatureName = ""
	m.KNearestNeighborsClassifier.Labels = &spec.Int64Labels{Values: make([]int64, len(m.KNearestNeighborsClassifier.Index.Points))}
	err := Check(m)
	var ierr *modeliface.InterfaceError
	require.True(t, errors.As(err, &ierr), "got %v", err)
	assert.Equal(t, "invalid-interface", Kind(err))
}

func TestCheck_InputShape(t *testing.T) {
	tests := []struct {
		shape   []int64
		wantErr bool
	}{
		{[]int64{4}, false},
		{nil, false},
		{[]int64{3}, true},
		{[]int64{1, 4}, true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.shape), func(t *testing.T) {
			m := knnModel()
			m.Description.Inputs[0].Type.Shape = tt.shape
			err := Check(m)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			var serr *InputShapeError
			require.True(t, errors.As(err, &serr), "got %v", err)
			assert.Equal(t, "input-shape-mismatch", Kind(err))
		})
	}
}

func TestCheck_DecodedFixture(t *testing.T) {
	doc := `{
		"specificationVersion": 4,
		"description": {
			"input": [{"name": "input", "type": {"multiArrayType": {"shape": [4]}}}],
			"output": [{"name": "output", "type": {"stringType": {}}}],
			"predictedFeatureName": "output"
		},
		"kNearestNeighborsClassifier": {
			"k": 3,
			"uniformWeighting": {},
			"nearestNeighborsIndex": {
				"numberOfDimensions": 4,
				"singleKdTreeIndex": {"leafSize": 30},
				"squaredEuclideanDistance": {}
			},
			"defaultStringLabel": "Default"
		}
	}`
	m, err := document.Decode([]byte(doc), document.FormatJSON)
	require.NoError(t, err)
	require.NoError(t, Check(m))
}

func TestKind(t *testing.T) {
	assert.Equal(t, "", Kind(nil))
	assert.Equal(t, "error", Kind(errors.New("boom")))
	assert.Equal(t, "decode-schema", Kind(&document.DecodeError{Stage: document.StageSchema, Err: errors.New("x")}))
	assert.Equal(t, "label-count-mismatch", Kind(fmt.Errorf("wrapped: %w", knn.ErrLabelCountMismatch)))
}
