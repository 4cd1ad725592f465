package document

// The types below mirror the serialized document. Tagged choices are
// pointer fields so that presence can be told apart from a zero value.

type wireModel struct {
	SpecificationVersion int             `json:"specificationVersion"`
	Description          wireDescription `json:"description"`
	KNN                  *wireClassifier `json:"kNearestNeighborsClassifier"`
}

type wireDescription struct {
	Input                []wireFeature `json:"input"`
	Output               []wireFeature `json:"output"`
	PredictedFeatureName string        `json:"predictedFeatureName"`
	Metadata             wireMetadata  `json:"metadata"`
}

type wireMetadata struct {
	ShortDescription string `json:"shortDescription"`
	Author           string `json:"author"`
	License          string `json:"license"`
	VersionString    string `json:"versionString"`
}

type wireFeature struct {
	Name string          `json:"name"`
	Type wireFeatureType `json:"type"`
}

type wireFeatureType struct {
	Int64Type      *struct{}       `json:"int64Type"`
	DoubleType     *struct{}       `json:"doubleType"`
	StringType     *struct{}       `json:"stringType"`
	DictionaryType *struct{}       `json:"dictionaryType"`
	MultiArrayType *wireMultiArray `json:"multiArrayType"`
}

type wireMultiArray struct {
	Shape    []int64 `json:"shape"`
	DataType string  `json:"dataType"`
}

type wireClassifier struct {
	K                        int               `json:"k"`
	UniformWeighting         *struct{}         `json:"uniformWeighting"`
	InverseDistanceWeighting *struct{}         `json:"inverseDistanceWeighting"`
	Index                    *wireIndex        `json:"nearestNeighborsIndex"`
	Int64ClassLabels         *wireInt64Vector  `json:"int64ClassLabels"`
	StringClassLabels        *wireStringVector `json:"stringClassLabels"`
	DefaultStringLabel       *string           `json:"defaultStringLabel"`
	DefaultInt64Label        *int64            `json:"defaultInt64Label"`
}

type wireIndex struct {
	NumberOfDimensions       int               `json:"numberOfDimensions"`
	FloatSamples             []wireFloatVector `json:"floatSamples"`
	LinearIndex              *struct{}         `json:"linearIndex"`
	SingleKdTreeIndex        *wireKDTree       `json:"singleKdTreeIndex"`
	SquaredEuclideanDistance *struct{}         `json:"squaredEuclideanDistance"`
}

type wireKDTree struct {
	LeafSize int `json:"leafSize"`
}

type wireFloatVector struct {
	Vector []float32 `json:"vector"`
}

type wireInt64Vector struct {
	Vector []int64 `json:"vector"`
}

type wireStringVector struct {
	Vector []string `json:"vector"`
}
