package document

// object returns a closed JSON schema object with the given properties.
func object(props map[string]any) map[string]any {
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
}

var emptyObject = object(map[string]any{})

var featureTypeSchema = object(map[string]any{
	"int64Type":      emptyObject,
	"doubleType":     emptyObject,
	"stringType":     emptyObject,
	"dictionaryType": emptyObject,
	"multiArrayType": object(map[string]any{
		"shape": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "integer", "minimum": 0},
		},
		"dataType": map[string]any{
			"type": "string",
			"enum": []any{"FLOAT32", "DOUBLE", "INT32"},
		},
	}),
})

var featureSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name":             map[string]any{"type": "string"},
		"shortDescription": map[string]any{"type": "string"},
		"type":             featureTypeSchema,
	},
	"required":             []any{"name", "type"},
	"additionalProperties": false,
}

var descriptionSchema = object(map[string]any{
	"input":                map[string]any{"type": "array", "items": featureSchema},
	"output":               map[string]any{"type": "array", "items": featureSchema},
	"predictedFeatureName": map[string]any{"type": "string"},
	"metadata": object(map[string]any{
		"shortDescription": map[string]any{"type": "string"},
		"author":           map[string]any{"type": "string"},
		"license":          map[string]any{"type": "string"},
		"versionString":    map[string]any{"type": "string"},
	}),
})

var indexSchema = object(map[string]any{
	"numberOfDimensions": map[string]any{"type": "integer"},
	"floatSamples": map[string]any{
		"type": "array",
		"items": object(map[string]any{
			"vector": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "number"},
			},
		}),
	},
	"linearIndex": emptyObject,
	"singleKdTreeIndex": object(map[string]any{
		"leafSize": map[string]any{"type": "integer"},
	}),
	"squaredEuclideanDistance": emptyObject,
})

var classifierSchema = object(map[string]any{
	"k":                        map[string]any{"type": "integer"},
	"uniformWeighting":         emptyObject,
	"inverseDistanceWeighting": emptyObject,
	"nearestNeighborsIndex":    indexSchema,
	"int64ClassLabels": object(map[string]any{
		"vector": map[string]any{"type": "array", "items": map[string]any{"type": "integer"}},
	}),
	"stringClassLabels": object(map[string]any{
		"vector": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	}),
	"defaultStringLabel": map[string]any{"type": "string"},
	"defaultInt64Label":  map[string]any{"type": "integer"},
})

// ModelSchema is the structural schema every model document must satisfy
// before it is materialized. Only the nearest-neighbors classifier body is
// described in detail; other model kinds are accepted as opaque objects.
var ModelSchema = &Schema{
	Name:        "model-document",
	Description: "A serialized model with its interface and one model-kind body",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"specificationVersion":        map[string]any{"type": "integer", "minimum": 1},
			"description":                 descriptionSchema,
			"kNearestNeighborsClassifier": classifierSchema,
		},
		"required":             []any{"specificationVersion", "description"},
		"additionalProperties": map[string]any{"type": "object"},
	},
}

// Schema is a named JSON schema definition.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}
