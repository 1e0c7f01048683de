package validation

import (
	"fmt"

	"github.com/endoflife-date/eolint/pkg/logger"
	"github.com/endoflife-date/eolint/pkg/schema"
)

var releaseValidationLog = logger.New("validation:release")

// orderedDimensionPairs are the lifecycle date pairs expected to be
// non-decreasing on a single release: releaseDate <= eoas <= eol <= eoes,
// and releaseDate <= eol always. Each pair is only checked when both
// dimensions' columns are enabled; the Before rule additionally exempts
// boolean endpoints.
var orderedDimensionPairs = [][2]string{
	{"releaseDate", "eoas"},
	{"releaseDate", "eol"},
	{"releaseDate", "eoes"},
	{"eoas", "eol"},
	{"eoas", "eoes"},
	{"eol", "eoes"},
}

// validateReleases runs every per-release check, the cross-release
// chronological-ordering invariant, and the undeclared-field checks.
func (v *Validator) validateReleases(rules Rules, p *schema.Product) {
	releases := p.Releases()
	releaseValidationLog.Printf("Validating %d releases of %s", len(releases), p.Name)

	declared := make(map[string]bool)
	for _, field := range p.CustomFields() {
		declared[field.Name()] = true
	}

	for _, release := range releases {
		loc := Location{Record: p.Name, Cycle: release.Cycle()}
		releaseRules := rules.At(loc)

		v.validateRelease(releaseRules, p, release)
		v.validateReleaseFields(releaseRules, release, declared)
	}

	v.validateReleaseOrdering(rules, p, releases)
}

// validateRelease checks one release's own fields.
func (v *Validator) validateRelease(rules Rules, p *schema.Product, release schema.Release) {
	cycle := release.Field("releaseCycle")
	if cycle.IsAbsent() {
		rules.report(TopicSchema, "releaseCycle", cycle, "is required")
	} else {
		rules.Matches("releaseCycle", cycle, cyclePattern, "a release cycle slug")
	}

	rules.String("releaseLabel", release.Field("releaseLabel"))
	rules.String("codename", release.Field("codename"))

	rules.RequiredDate("releaseDate", release.Field("releaseDate"))
	rules.NotTooFarInFuture("releaseDate", release.Field("releaseDate"))

	for _, dim := range []string{"eoas", "eol", "discontinued", "eoes"} {
		if !columnEnabled(p, dim) {
			continue
		}
		rules.RequiredBoolOrDate(dim, release.Field(dim))
	}

	rules.BoolOrDate("lts", release.Field("lts"))

	if columnEnabled(p, "release") {
		rules.String("latest", release.Field("latest"))
		rules.Date("latestReleaseDate", release.Field("latestReleaseDate"))
	}

	rules.Matches("link", release.Field("link"), urlPattern, "a URL")

	for _, pair := range orderedDimensionPairs {
		if pair[0] != "releaseDate" && !columnEnabled(p, pair[0]) {
			continue
		}
		if !columnEnabled(p, pair[1]) {
			continue
		}
		rules.Before(pair[0], release.Field(pair[0]), pair[1], release.Field(pair[1]))
	}
}

// validateReleaseFields reports release keys that are neither standard
// fields nor declared custom fields, and type-checks declared custom values.
func (v *Validator) validateReleaseFields(rules Rules, release schema.Release, declared map[string]bool) {
	for key, value := range release.Fields {
		if schema.StandardReleaseFields[key] {
			continue
		}
		if !declared[key] {
			rules.report(TopicUndeclaredField, key, value,
				"is not a standard release field and is not declared in customFields")
			continue
		}

		switch value.Kind() {
		case schema.KindString, schema.KindDate:
			// custom field values must be strings or date-like
		default:
			rules.report(TopicSchema, key, value,
				fmt.Sprintf("custom field value must be a string or a date, got %s", value.Kind()))
		}
	}
}

// validateReleaseOrdering enforces the newest-first invariant: read in list
// order, every release not flagged outOfOrder must have a releaseDate no
// later than the previous non-outOfOrder release's date.
func (v *Validator) validateReleaseOrdering(rules Rules, p *schema.Product, releases []schema.Release) {
	var prev *schema.Release
	for i := range releases {
		release := releases[i]
		if release.OutOfOrder() {
			continue
		}
		date := release.Field("releaseDate")
		if !date.IsDate() {
			// missing or mistyped dates are reported by the per-release checks
			continue
		}

		if prev != nil {
			prevDate := prev.Field("releaseDate")
			if prevDate.IsDate() && date.Date().After(prevDate.Date()) {
				loc := Location{Record: p.Name, Cycle: release.Cycle()}
				rules.At(loc).report(TopicOrdering, "releaseDate", date,
					fmt.Sprintf("releases are expected newest-first: %s (%s) is newer than %s (%s); set outOfOrder to exempt it",
						release.Cycle(), date, prev.Cycle(), prevDate))
			}
		}
		prev = &releases[i]
	}
}
