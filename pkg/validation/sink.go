// Package validation is the rule checker for product lifecycle records: a
// fixed, hand-authored rule set applied to the record shape before
// enrichment, plus a URL liveness pass after it. Violations never abort a
// record; every remaining field, release, and URL is still checked, and the
// build-level decision is made once from the sink's final count.
package validation

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/endoflife-date/eolint/pkg/console"
	"github.com/endoflife-date/eolint/pkg/logger"
)

var sinkLog = logger.New("validation:sink")

// Topic tags a violation with the class of rule it broke.
type Topic string

const (
	// TopicSchema - wrong type, format, or enum membership for a field.
	TopicSchema Topic = "schema"
	// TopicOrdering - violated temporal or sequence invariant.
	TopicOrdering Topic = "ordering"
	// TopicUndeclaredField - a release key not declared anywhere.
	TopicUndeclaredField Topic = "undeclared-field"
	// TopicIdentifier - identifier descriptor failed rendering.
	TopicIdentifier Topic = "identifier"
	// TopicURL - network fetch failed or returned >= 400.
	TopicURL Topic = "url"
)

// Location identifies where inside a record a violation occurred. Cycle and
// CustomField disambiguate errors inside the list-shaped sub-structures.
type Location struct {
	Record      string
	Cycle       string
	CustomField string
}

// String renders the location as a path-like reference.
func (l Location) String() string {
	switch {
	case l.Cycle != "":
		return l.Record + "#" + l.Cycle
	case l.CustomField != "":
		return l.Record + ".customFields." + l.CustomField
	default:
		return l.Record
	}
}

// Violation is one reported rule violation.
type Violation struct {
	Severity string `json:"severity"`
	Topic    Topic  `json:"topic"`
	Location string `json:"location"`
	Field    string `json:"field"`
	Value    string `json:"value"`
	Reason   string `json:"reason"`
}

// String renders the violation as one log line.
func (v Violation) String() string {
	return fmt.Sprintf("[%s] %s %s = %q: %s", v.Topic, v.Location, v.Field, v.Value, v.Reason)
}

// Sink accumulates violations for one full build. The error count is
// additive for the lifetime of the build and is never reset; the final
// pass/abort decision reads it exactly once. Report and Warn are safe for
// concurrent use.
type Sink struct {
	errors atomic.Int64

	mu         sync.Mutex
	violations []Violation
}

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// Report logs a violation as an error and increments the build error count.
func (s *Sink) Report(topic Topic, loc Location, field string, value any, reason string) {
	v := Violation{
		Severity: "error",
		Topic:    topic,
		Location: loc.String(),
		Field:    field,
		Value:    fmt.Sprint(value),
		Reason:   reason,
	}
	s.errors.Add(1)
	s.record(v)
	fmt.Fprintln(os.Stderr, console.FormatErrorMessage(v.String()))
}

// Warn logs a violation as a warning without touching the error count.
func (s *Sink) Warn(topic Topic, loc Location, field string, value any, reason string) {
	v := Violation{
		Severity: "warning",
		Topic:    topic,
		Location: loc.String(),
		Field:    field,
		Value:    fmt.Sprint(value),
		Reason:   reason,
	}
	s.record(v)
	fmt.Fprintln(os.Stderr, console.FormatWarningMessage(v.String()))
}

func (s *Sink) record(v Violation) {
	sinkLog.Printf("%s %s", v.Severity, v)
	s.mu.Lock()
	s.violations = append(s.violations, v)
	s.mu.Unlock()
}

// Count returns the number of errors reported so far. Warnings never count.
func (s *Sink) Count() int64 {
	return s.errors.Load()
}

// Violations returns a copy of everything reported so far, warnings included.
func (s *Sink) Violations() []Violation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Violation, len(s.violations))
	copy(out, s.violations)
	return out
}
