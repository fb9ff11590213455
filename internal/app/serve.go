package app

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/corey/ridecheck/internal/domain/access"
)

// Request is one newline-delimited JSON gate request.
type Request struct {
	ID         string         `json:"id,omitempty"`
	Attraction string         `json:"attraction"`
	Visitor    access.Visitor `json:"visitor"`
}

// ViolationJSON is the wire form of access.Violation.
type ViolationJSON struct {
	Measure string `json:"measure"`
	Value   int    `json:"value"`
	Min     *int   `json:"min,omitempty"`
	Max     *int   `json:"max,omitempty"`
}

// Response is one newline-delimited JSON gate response.
type Response struct {
	ID         string          `json:"id,omitempty"`
	Attraction string          `json:"attraction,omitempty"`
	Visitor    string          `json:"visitor,omitempty"`
	Allowed    bool            `json:"allowed"`
	Violations []ViolationJSON `json:"violations,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// maxLine bounds a single request line.
const maxLine = 1024 * 1024

// Serve answers one request per input line until EOF or ctx is done.
// Bad lines get an error response; blank lines are skipped. Serve returns
// on cancellation even while r is idle; the reader goroutine then exits at
// its next read.
func (g *Gate) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	lines := make(chan []byte)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), maxLine)
		for scanner.Scan() {
			// Scanner reuses its buffer; hand over a copy.
			line := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- line:
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	enc := json.NewEncoder(w)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("read request: %w", err)
					}
				default:
				}
				return ctx.Err()
			}
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}
			if err := enc.Encode(g.handle(line)); err != nil {
				return fmt.Errorf("write response: %w", err)
			}
		}
	}
}

func (g *Gate) handle(line []byte) Response {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		return Response{Error: "invalid request JSON"}
	}
	resp := Response{ID: req.ID, Attraction: req.Attraction, Visitor: req.Visitor.Name}

	vd, err := g.Check(req.Attraction, req.Visitor)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}
	resp.Allowed = vd.Allowed
	if vd.Missing {
		resp.Error = "attraction has no profile"
	}
	for _, v := range vd.Violations {
		vj := ViolationJSON{Measure: v.Measure.String(), Value: v.Value}
		if v.Range.IsSet() {
			lo, hi := v.Range.Min(), v.Range.Max()
			vj.Min, vj.Max = &lo, &hi
		}
		resp.Violations = append(resp.Violations, vj)
	}
	return resp
}
