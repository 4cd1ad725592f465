// Package batch validates many model documents concurrently.
package batch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/abhisek/modelcheck/internal/checker"
	"github.com/abhisek/modelcheck/internal/document"
	"github.com/abhisek/modelcheck/internal/store"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of validating one document.
type Result struct {
	RunID     string
	Path      string
	Digest    string
	ModelKind string
	Err       error
	Duration  time.Duration
}

// Valid reports whether the document was accepted.
func (r Result) Valid() bool { return r.Err == nil }

// ErrorKind is the short label of the rejection reason, or "".
func (r Result) ErrorKind() string { return checker.Kind(r.Err) }

// Runner validates files with bounded parallelism.
type Runner struct {
	workers int
	repo    store.RunRepo
	logger  log.FieldLogger
	readFn  func(string) ([]byte, error)
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers sets the maximum number of documents validated at once.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// WithRecorder records every result in repo.
func WithRecorder(repo store.RunRepo) Option {
	return func(r *Runner) { r.repo = repo }
}

// WithLogger sets the logger; the default is the logrus standard logger.
func WithLogger(l log.FieldLogger) Option {
	return func(r *Runner) { r.logger = l }
}

// NewRunner creates a Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger: log.StandardLogger(),
		readFn: os.ReadFile,
	}
	for _, o := range opts {
		o(r)
	}
	if r.workers < 1 {
		r.workers = runtime.GOMAXPROCS(0)
	}
	return r
}

// Run validates every path and returns the batch ID with results in input
// order. A rejected document is a result, not an error; the returned error
// is non-nil only if ctx is cancelled or recording a result fails.
func (r *Runner) Run(ctx context.Context, paths []string) (string, []Result, error) {
	batchID := uuid.NewString()
	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := r.validateFile(path)
			results[i] = res

			entry := r.logger.WithFields(log.Fields{
				"file":     path,
				"run":      res.RunID,
				"duration": res.Duration,
			})
			if res.Err != nil {
				entry.WithField("kind", res.ErrorKind()).Debugf("Rejected: %s", res.Err)
			} else {
				entry.Debug("Accepted")
			}

			if r.repo != nil {
				if err := r.repo.Append(gctx, toRun(batchID, res)); err != nil {
					return fmt.Errorf("record %s: %w", path, err)
				}
			}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		// Paths never reached are reported as rejected, not left zero.
		for i := range results {
			if results[i].RunID == "" {
				results[i] = Result{Path: paths[i], Err: fmt.Errorf("skipped: %w", err)}
			}
		}
	}
	return batchID, results, err
}

func (r *Runner) validateFile(path string) Result {
	start := time.Now()
	res := Result{RunID: uuid.NewString(), Path: path}

	data, err := r.readFn(path)
	if err != nil {
		res.Err = fmt.Errorf("read %s: %w", path, err)
		res.Duration = time.Since(start)
		return res
	}
	sum := sha256.Sum256(data)
	res.Digest = hex.EncodeToString(sum[:])

	m, err := document.Decode(data, document.FormatFromPath(path))
	if err != nil {
		res.Err = err
		res.Duration = time.Since(start)
		return res
	}
	res.ModelKind = m.Kind
	res.Err = checker.Check(m)
	res.Duration = time.Since(start)
	return res
}

func toRun(batchID string, res Result) *store.Run {
	run := &store.Run{
		ID:        res.RunID,
		BatchID:   batchID,
		Source:    res.Path,
		Digest:    res.Digest,
		ModelKind: res.ModelKind,
		Valid:     res.Valid(),
		ErrorKind: res.ErrorKind(),
		Duration:  res.Duration,
	}
	if res.Err != nil {
		run.Message = res.Err.Error()
	}
	return run
}
