// Package report writes factorization results and the run timing line.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aretw0/factors/pkg/domain"
)

// Handler presents results to the user.
// Implementations switch between plain text and structured JSON output.
type Handler interface {
	// Result is called once per input number, in input order.
	Result(r domain.Result) error

	// Elapsed is called once after all numbers were processed.
	Elapsed(d time.Duration) error
}

// TextHandler prints "n=i*j" lines followed by "Time taken: X.XXX seconds.".
type TextHandler struct {
	Writer io.Writer
}

// NewTextHandler creates a text handler. A nil writer means stdout.
func NewTextHandler(w io.Writer) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	return &TextHandler{Writer: w}
}

// Result prints "n=i*j" when r has a factor pair and nothing otherwise.
func (h *TextHandler) Result(r domain.Result) error {
	if !r.Found {
		return nil
	}
	_, err := fmt.Fprintln(h.Writer, r.String())
	return err
}

// Elapsed prints the timing line with millisecond precision.
func (h *TextHandler) Elapsed(d time.Duration) error {
	_, err := fmt.Fprintf(h.Writer, "Time taken: %.3f seconds.\n", d.Seconds())
	return err
}

type jsonResult struct {
	N       int64    `json:"n"`
	Factors [2]int64 `json:"factors"`
}

type jsonElapsed struct {
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

// JSONHandler emits one JSON line per factorized number and a final timing line.
type JSONHandler struct {
	Encoder *json.Encoder
}

// NewJSONHandler creates a JSON-Lines handler. A nil writer means stdout.
func NewJSONHandler(w io.Writer) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{Encoder: json.NewEncoder(w)}
}

// Result encodes {"n":..,"factors":[i,j]} when r has a factor pair.
func (h *JSONHandler) Result(r domain.Result) error {
	if !r.Found {
		return nil
	}
	return h.Encoder.Encode(jsonResult{N: r.N, Factors: [2]int64{r.Pair.Small, r.Pair.Large}})
}

// Elapsed encodes {"elapsed_seconds":..}.
func (h *JSONHandler) Elapsed(d time.Duration) error {
	return h.Encoder.Encode(jsonElapsed{ElapsedSeconds: d.Seconds()})
}
