// Package report renders batch validation results.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/modelcheck/internal/batch"
)

var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F43F5E"))
	kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

// Counts returns the number of accepted and rejected documents.
func Counts(results []batch.Result) (valid, invalid int) {
	for _, r := range results {
		if r.Valid() {
			valid++
		} else {
			invalid++
		}
	}
	return valid, invalid
}

// Text writes one line per result and a summary. With color off no
// escape sequences are written.
func Text(w io.Writer, results []batch.Result, color bool) error {
	render := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}
	writeln := fmt.Fprintln
	if color {
		writeln = lipgloss.Fprintln
	}

	for _, r := range results {
		var line string
		if r.Valid() {
			line = fmt.Sprintf("%s %s", render(okStyle, "✓"), r.Path)
		} else {
			line = fmt.Sprintf("%s %s  %s\n    %s",
				render(failStyle, "✗"), r.Path,
				render(kindStyle, r.ErrorKind()),
				render(dimStyle, r.Err.Error()))
		}
		if _, err := writeln(w, line); err != nil {
			return err
		}
	}

	valid, invalid := Counts(results)
	_, err := writeln(w, fmt.Sprintf("\n%d valid, %d invalid", valid, invalid))
	return err
}

type jsonResult struct {
	Path       string `json:"path"`
	RunID      string `json:"run_id"`
	Digest     string `json:"digest,omitempty"`
	ModelKind  string `json:"model_kind,omitempty"`
	Valid      bool   `json:"valid"`
	Kind       string `json:"kind,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationUs int64  `json:"duration_us"`
}

type jsonReport struct {
	BatchID string       `json:"batch_id"`
	Valid   int          `json:"valid"`
	Invalid int          `json:"invalid"`
	Results []jsonResult `json:"results"`
}

// JSON writes the batch as a single indented JSON object.
func JSON(w io.Writer, batchID string, results []batch.Result) error {
	rep := jsonReport{BatchID: batchID, Results: make([]jsonResult, 0, len(results))}
	rep.Valid, rep.Invalid = Counts(results)
	for _, r := range results {
		jr := jsonResult{
			Path:       r.Path,
			RunID:      r.RunID,
			Digest:     r.Digest,
			ModelKind:  r.ModelKind,
			Valid:      r.Valid(),
			Kind:       r.ErrorKind(),
			DurationUs: r.Duration.Microseconds(),
		}
		if r.Err != nil {
			jr.Error = r.Err.Error()
		}
		rep.Results = append(rep.Results, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
