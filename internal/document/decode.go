// Package document decodes serialized model documents into the in-memory
// specification model.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/abhisek/modelcheck/internal/spec"
	"gopkg.in/yaml.v3"
)

// KindKNearestNeighborsClassifier is the document key of the
// nearest-neighbors classifier body.
const KindKNearestNeighborsClassifier = "kNearestNeighborsClassifier"

// Format is the serialization of a document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from the file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Stage names the decoding step that failed.
type Stage string

const (
	StageParse     Stage = "parse"
	StageSchema    Stage = "schema"
	StageStructure Stage = "structure"
)

// DecodeError reports a document that could not be materialized.
type DecodeError struct {
	Stage Stage
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode document (%s): %v", e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode parses data, validates it against ModelSchema and builds the
// specification model.
func Decode(data []byte, format Format) (*spec.Model, error) {
	raw, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}

	if err := validateAgainst(ModelSchema, raw); err != nil {
		return nil, err
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, &DecodeError{Stage: StageParse, Err: err}
	}
	kind, err := modelKind(top)
	if err != nil {
		return nil, err
	}

	var w wireModel
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, &DecodeError{Stage: StageParse, Err: err}
	}

	m := &spec.Model{
		SpecificationVersion: w.SpecificationVersion,
		Kind:                 kind,
	}
	if m.Description, err = buildDescription(w.Description); err != nil {
		return nil, err
	}
	if w.KNN != nil {
		if m.KNearestNeighborsClassifier, err = buildClassifier(w.KNN); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// toJSON normalizes data to JSON. YAML is decoded into generic values and
// re-encoded.
func toJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return bytes.TrimSpace(data), nil
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, &DecodeError{Stage: StageParse, Err: fmt.Errorf("invalid YAML: %w", err)}
		}
		out, err := json.Marshal(v)
		if err != nil {
			return nil, &DecodeError{Stage: StageParse, Err: fmt.Errorf("convert YAML to JSON: %w", err)}
		}
		return out, nil
	default:
		return nil, &DecodeError{Stage: StageParse, Err: fmt.Errorf("unsupported format %q", format)}
	}
}

// modelKind returns the single model-kind key of the document, or "" if
// there is none.
func modelKind(top map[string]json.RawMessage) (string, error) {
	var kinds []string
	for k := range top {
		if k == "specificationVersion" || k == "description" {
			continue
		}
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	switch len(kinds) {
	case 0:
		return "", nil
	case 1:
		return kinds[0], nil
	default:
		return "", ambiguous("model kind", kinds...)
	}
}

func ambiguous(choice string, variants ...string) error {
	return &DecodeError{
		Stage: StageStructure,
		Err:   fmt.Errorf("ambiguous %s: %s are all set", choice, strings.Join(variants, ", ")),
	}
}

// selected returns the names whose flag is set; callers treat more than
// one as ambiguous.
func selected(names []string, set []bool) []string {
	var out []string
	for i, ok := range set {
		if ok {
			out = append(out, names[i])
		}
	}
	return out
}

func buildDescription(w wireDescription) (spec.Description, error) {
	d := spec.Description{
		PredictedFeatureName: w.PredictedFeatureName,
		Metadata: spec.Metadata{
			ShortDescription: w.Metadata.ShortDescription,
			Author:           w.Metadata.Author,
			License:          w.Metadata.License,
			VersionString:    w.Metadata.VersionString,
		},
	}
	for _, f := range w.Input {
		ft, err := buildFeatureType(f.Name, f.Type)
		if err != nil {
			return d, err
		}
		d.Inputs = append(d.Inputs, spec.Feature{Name: f.Name, Type: ft})
	}
	for _, f := range w.Output {
		ft, err := buildFeatureType(f.Name, f.Type)
		if err != nil {
			return d, err
		}
		d.Outputs = append(d.Outputs, spec.Feature{Name: f.Name, Type: ft})
	}
	return d, nil
}

func buildFeatureType(name string, w wireFeatureType) (spec.FeatureType, error) {
	set := selected(
		[]string{"int64Type", "doubleType", "stringType", "dictionaryType", "multiArrayType"},
		[]bool{w.Int64Type != nil, w.DoubleType != nil, w.StringType != nil, w.DictionaryType != nil, w.MultiArrayType != nil},
	)
	if len(set) > 1 {
		return spec.FeatureType{}, ambiguous(fmt.Sprintf("type of feature %q", name), set...)
	}

	switch {
	case w.Int64Type != nil:
		return spec.FeatureType{Kind: spec.FeatureInt64}, nil
	case w.DoubleType != nil:
		return spec.FeatureType{Kind: spec.FeatureDouble}, nil
	case w.StringType != nil:
		return spec.FeatureType{Kind: spec.FeatureString}, nil
	case w.DictionaryType != nil:
		return spec.FeatureType{Kind: spec.FeatureDictionary}, nil
	case w.MultiArrayType != nil:
		return spec.FeatureType{
			Kind:     spec.FeatureMultiArray,
			Shape:    w.MultiArrayType.Shape,
			DataType: w.MultiArrayType.DataType,
		}, nil
	default:
		return spec.FeatureType{Kind: spec.FeatureUnknown}, nil
	}
}

func buildClassifier(w *wireClassifier) (*spec.ClassifierSpec, error) {
	c := &spec.ClassifierSpec{K: w.K}

	if set := selected(
		[]string{"uniformWeighting", "inverseDistanceWeighting"},
		[]bool{w.UniformWeighting != nil, w.InverseDistanceWeighting != nil},
	); len(set) > 1 {
		return nil, ambiguous("weighting scheme", set...)
	}
	switch {
	case w.UniformWeighting != nil:
		c.Weighting = &spec.UniformWeighting{}
	case w.InverseDistanceWeighting != nil:
		c.Weighting = &spec.InverseDistanceWeighting{}
	}

	if w.Index != nil {
		idx, err := buildIndex(w.Index)
		if err != nil {
			return nil, err
		}
		c.Index = idx
	}

	if set := selected(
		[]string{"int64ClassLabels", "stringClassLabels"},
		[]bool{w.Int64ClassLabels != nil, w.StringClassLabels != nil},
	); len(set) > 1 {
		return nil, ambiguous("class labels", set...)
	}
	switch {
	case w.Int64ClassLabels != nil:
		c.Labels = &spec.Int64Labels{Values: w.Int64ClassLabels.Vector}
	case w.StringClassLabels != nil:
		c.Labels = &spec.StringLabels{Values: w.StringClassLabels.Vector}
	}

	if set := selected(
		[]string{"defaultStringLabel", "defaultInt64Label"},
		[]bool{w.DefaultStringLabel != nil, w.DefaultInt64Label != nil},
	); len(set) > 1 {
		return nil, ambiguous("default label", set...)
	}
	switch {
	case w.DefaultStringLabel != nil:
		c.Default = &spec.DefaultStringLabel{Value: *w.DefaultStringLabel}
	case w.DefaultInt64Label != nil:
		c.Default = &spec.DefaultInt64Label{Value: *w.DefaultInt64Label}
	}

	return c, nil
}

func buildIndex(w *wireIndex) (spec.IndexSpec, error) {
	idx := spec.IndexSpec{NumberOfDimensions: w.NumberOfDimensions}

	for _, s := range w.FloatSamples {
		idx.Points = append(idx.Points, s.Vector)
	}

	if set := selected(
		[]string{"linearIndex", "singleKdTreeIndex"},
		[]bool{w.LinearIndex != nil, w.SingleKdTreeIndex != nil},
	); len(set) > 1 {
		return idx, ambiguous("index structure", set...)
	}
	switch {
	case w.LinearIndex != nil:
		idx.Structure = &spec.LinearIndex{}
	case w.SingleKdTreeIndex != nil:
		idx.Structure = &spec.KDTreeIndex{LeafSize: w.SingleKdTreeIndex.LeafSize}
	}

	if w.SquaredEuclideanDistance != nil {
		idx.Distance = &spec.SquaredEuclideanDistance{}
	}
	return idx, nil
}
