package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/modelcheck/internal/knn"
	"github.com/abhisek/modelcheck/internal/store"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `{
	"specificationVersion": 4,
	"description": {
		"input": [{"name": "input", "type": {"multiArrayType": {"shape": [2]}}}],
		"output": [{"name": "label", "type": {"int64Type": {}}}],
		"predictedFeatureName": "label"
	},
	"kNearestNeighborsClassifier": {
		"k": 1,
		"uniformWeighting": {},
		"nearestNeighborsIndex": {
			"numberOfDimensions": 2,
			"floatSamples": [{"vector": [0, 0]}, {"vector": [1, 1]}],
			"linearIndex": {},
			"squaredEuclideanDistance": {}
		},
		"int64ClassLabels": {"vector": [0, 1]}
	}
}`

const badLeafDoc = `
specificationVersion: 4
description:
  input: [{name: input, type: {multiArrayType: {shape: [2]}}}]
  output: [{name: label, type: {int64Type: {}}}]
  predictedFeatureName: label
kNearestNeighborsClassifier:
  k: 1
  uniformWeighting: {}
  nearestNeighborsIndex:
    numberOfDimensions: 2
    floatSamples: [{vector: [0, 0]}]
    singleKdTreeIndex: {leafSize: 0}
    squaredEuclideanDistance: {}
  int64ClassLabels: {vector: [0]}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func quietLogger() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

type memRepo struct {
	mu   sync.Mutex
	runs []store.Run
	err  error
}

func (m *memRepo) Append(_ context.Context, run *store.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.runs = append(m.runs, *run)
	return nil
}

func (m *memRepo) List(context.Context, store.QueryOpts) ([]store.Run, error) {
	return m.runs, nil
}

func (m *memRepo) Get(context.Context, string) (*store.Run, error) {
	return nil, nil
}

func TestRun_MixedResults(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "good.json", validDoc),
		writeFile(t, dir, "bad.yaml", badLeafDoc),
		filepath.Join(dir, "missing.json"),
		writeFile(t, dir, "garbage.json", "{not json"),
	}

	repo := &memRepo{}
	r := NewRunner(WithWorkers(2), WithRecorder(repo), WithLogger(quietLogger()))
	batchID, results, err := r.Run(context.Background(), paths)
	require.NoError(t, err)
	require.NotEmpty(t, batchID)
	require.Len(t, results, 4)

	for i, res := range results {
		assert.Equal(t, paths[i], res.Path, "results must keep input order")
		assert.NotEmpty(t, res.RunID)
	}

	assert.True(t, results[0].Valid(), "good.json: %v", results[0].Err)
	assert.Equal(t, "kNearestNeighborsClassifier", results[0].ModelKind)
	assert.Len(t, results[0].Digest, 64)

	assert.ErrorIs(t, results[1].Err, knn.ErrInvalidLeafSize)
	assert.Equal(t, "invalid-leaf-size", results[1].ErrorKind())

	assert.True(t, errors.Is(results[2].Err, os.ErrNotExist))
	assert.Empty(t, results[2].Digest)

	assert.Equal(t, "decode-parse", results[3].ErrorKind())

	require.Len(t, repo.runs, 4)
	for _, run := range repo.runs {
		assert.Equal(t, batchID, run.BatchID)
		if strings.HasSuffix(run.Source, "good.json") {
			assert.True(t, run.Valid)
			assert.Empty(t, run.Message)
		} else {
			assert.False(t, run.Valid)
			assert.NotEmpty(t, run.Message)
		}
	}
}

func TestRun_RecorderFailure(t *testing.T) {
	dir := t.TempDir()
	paths := []string{writeFile(t, dir, "good.json", validDoc)}

	repo := &memRepo{err: errors.New("disk full")}
	r := NewRunner(WithRecorder(repo), WithLogger(quietLogger()))
	_, _, err := r.Run(context.Background(), paths)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRun_Cancelled(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "good.json", validDoc),
		writeFile(t, dir, "also-good.json", validDoc),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(WithLogger(quietLogger()))
	_, results, err := r.Run(ctx, paths)
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 2)
	for i, res := range results {
		assert.Equal(t, paths[i], res.Path)
		assert.False(t, res.Valid(), "skipped document must not count as accepted")
		assert.ErrorIs(t, res.Err, context.Canceled)
	}
}

func TestRun_ManyDocuments(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 40; i++ {
		paths = append(paths, writeFile(t, dir, fmt.Sprintf("m%02d.json", i), validDoc))
	}

	r := NewRunner(WithWorkers(8), WithLogger(quietLogger()))
	_, results, err := r.Run(context.Background(), paths)
	require.NoError(t, err)
	for _, res := range results {
		assert.True(t, res.Valid(), "%s: %v", res.Path, res.Err)
	}
}

func TestNewRunner_DefaultWorkers(t *testing.T) {
	r := NewRunner(WithWorkers(0))
	assert.GreaterOrEqual(t, r.workers, 1)
}
