package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/endoflife-date/eolint/pkg/constants"
	"github.com/endoflife-date/eolint/pkg/schema"
)

// Rules binds the assertion primitives to a sink and a location. Each
// primitive inspects one field value (or a pair) and either does nothing or
// reports a violation with a human-readable reason; none of them abort.
// Optional variants silently accept absent values.
type Rules struct {
	sink  *Sink
	loc   Location
	today time.Time
}

// NewRules creates a rule checker reporting at the given location. The
// reference day anchors the too-far-in-future check.
func NewRules(sink *Sink, loc Location, today time.Time) Rules {
	return Rules{sink: sink, loc: loc, today: today}
}

// At returns a copy of the rules reporting at a different location.
func (r Rules) At(loc Location) Rules {
	r.loc = loc
	return r
}

func (r Rules) report(topic Topic, field string, value any, reason string) {
	r.sink.Report(topic, r.loc, field, value, reason)
}

// RequiredString reports unless the value is a present string.
func (r Rules) RequiredString(field string, v schema.Value) {
	if v.IsAbsent() {
		r.report(TopicSchema, field, v, "is required")
		return
	}
	r.String(field, v)
}

// String reports unless the value is absent or a string.
func (r Rules) String(field string, v schema.Value) {
	if v.IsAbsent() || v.Kind() == schema.KindString {
		return
	}
	r.report(TopicSchema, field, v, fmt.Sprintf("must be a string, got %s", v.Kind()))
}

// Number reports unless the value is absent or a number.
func (r Rules) Number(field string, v schema.Value) {
	if v.IsAbsent() || v.Kind() == schema.KindNumber {
		return
	}
	r.report(TopicSchema, field, v, fmt.Sprintf("must be a number, got %s", v.Kind()))
}

// List reports unless the value is absent or a list.
func (r Rules) List(field string, v schema.Value) {
	if v.IsAbsent() || v.Kind() == schema.KindList {
		return
	}
	r.report(TopicSchema, field, v, fmt.Sprintf("must be a list, got %s", v.Kind()))
}

// RequiredDate reports unless the value is a present date.
func (r Rules) RequiredDate(field string, v schema.Value) {
	if v.IsAbsent() {
		r.report(TopicSchema, field, v, "is required")
		return
	}
	r.Date(field, v)
}

// Date reports unless the value is absent or a date.
func (r Rules) Date(field string, v schema.Value) {
	if v.IsAbsent() || v.Kind() == schema.KindDate {
		return
	}
	r.report(TopicSchema, field, v, fmt.Sprintf("must be a date (%s), got %s", schema.DateLayout, v.Kind()))
}

// BoolOrString reports unless the value is absent, a boolean, or a string.
func (r Rules) BoolOrString(field string, v schema.Value) {
	switch v.Kind() {
	case schema.KindAbsent, schema.KindBool, schema.KindString:
		return
	}
	r.report(TopicSchema, field, v, fmt.Sprintf("must be a boolean or a string, got %s", v.Kind()))
}

// BoolOrDate reports unless the value is absent, a boolean, or a date.
func (r Rules) BoolOrDate(field string, v schema.Value) {
	switch v.Kind() {
	case schema.KindAbsent, schema.KindBool, schema.KindDate:
		return
	}
	r.report(TopicSchema, field, v, fmt.Sprintf("must be a boolean or a date, got %s", v.Kind()))
}

// RequiredBoolOrDate reports unless the value is a present boolean or date.
func (r Rules) RequiredBoolOrDate(field string, v schema.Value) {
	if v.IsAbsent() {
		r.report(TopicSchema, field, v, "is required")
		return
	}
	r.BoolOrDate(field, v)
}

// Matches reports unless the value is absent or a string matching the
// pattern. When the value is a list, every element is matched instead.
func (r Rules) Matches(field string, v schema.Value, pattern *regexp.Regexp, expected string) {
	switch v.Kind() {
	case schema.KindAbsent:
		return
	case schema.KindList:
		for _, item := range v.List() {
			r.Matches(field, item, pattern, expected)
		}
	case schema.KindString:
		if !pattern.MatchString(v.Str()) {
			r.report(TopicSchema, field, v, fmt.Sprintf("must be %s (matching %s)", expected, pattern))
		}
	default:
		r.report(TopicSchema, field, v, fmt.Sprintf("must be a string, got %s", v.Kind()))
	}
}

// OneOf reports unless the value is absent or a string inside the fixed set.
func (r Rules) OneOf(field string, v schema.Value, allowed []string) {
	if v.IsAbsent() {
		return
	}
	if v.Kind() != schema.KindString {
		r.report(TopicSchema, field, v, fmt.Sprintf("must be a string, got %s", v.Kind()))
		return
	}
	for _, candidate := range allowed {
		if v.Str() == candidate {
			return
		}
	}
	r.report(TopicSchema, field, v, fmt.Sprintf("must be one of %v", allowed))
}

// NotTooFarInFuture reports a date lying beyond today plus
// constants.FutureReleaseWindow. The boundary is inclusive: a date exactly
// at the window's edge passes. Non-date values are not this rule's concern.
func (r Rules) NotTooFarInFuture(field string, v schema.Value) {
	if !v.IsDate() {
		return
	}
	limit := r.today.Add(constants.FutureReleaseWindow)
	if v.Date().After(limit) {
		r.report(TopicOrdering, field, v, fmt.Sprintf("is too far in the future (later than %s)", limit.Format(schema.DateLayout)))
	}
}

// Before reports unless the first value is on or before the second. The
// comparison only applies when both endpoints are actual dates; boolean
// endpoints (meaning "not applicable") are silently exempt.
func (r Rules) Before(field1 string, v1 schema.Value, field2 string, v2 schema.Value) {
	if !v1.IsDate() || !v2.IsDate() {
		return
	}
	if v1.Date().After(v2.Date()) {
		r.report(TopicOrdering, field1, v1, fmt.Sprintf("must be on or before %s (%s)", field2, v2))
	}
}
