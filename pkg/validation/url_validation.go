package validation

import (
	"context"
	"strconv"

	"github.com/endoflife-date/eolint/pkg/logger"
	"github.com/endoflife-date/eolint/pkg/parser"
	"github.com/endoflife-date/eolint/pkg/schema"
	"github.com/endoflife-date/eolint/pkg/urlcheck"
)

var urlValidationLog = logger.New("validation:url")

// productURLFields are the top-level fields checked for liveness when
// present. iconUrl typically arrives from the enrichment step.
var productURLFields = []string{"releasePolicyLink", "releaseImage", "iconUrl"}

// ValidateURLs runs the post-enrichment pass over one product record: every
// outbound URL the record references, plus every URL embedded in its
// free-text content, is resolved through the checker. Failures become
// errors, suppressed failures become warnings, and ignored URLs are skipped
// without network access.
func (v *Validator) ValidateURLs(ctx context.Context, p *schema.Product, checker *urlcheck.Checker) {
	urlValidationLog.Printf("Checking URLs for product %s", p.Name)

	loc := Location{Record: p.Name}

	for _, field := range productURLFields {
		v.checkURLField(ctx, checker, loc, field, p.Field(field))
	}

	for i, url := range parser.ExtractURLs(p.Body) {
		v.checkURL(ctx, checker, loc, "content", i, url)
	}

	for _, field := range p.CustomFields() {
		fieldLoc := loc
		fieldLoc.CustomField = field.Name()
		v.checkURLField(ctx, checker, fieldLoc, "link", field.Field("link"))
	}

	for _, release := range p.Releases() {
		releaseLoc := Location{Record: p.Name, Cycle: release.Cycle()}
		v.checkURLField(ctx, checker, releaseLoc, "link", release.Field("link"))
	}
}

// checkURLField resolves a URL-valued field when it holds a string. Mistyped
// values are the pre-enrichment pass's concern, not this one's.
func (v *Validator) checkURLField(ctx context.Context, checker *urlcheck.Checker, loc Location, field string, value schema.Value) {
	if value.Kind() != schema.KindString {
		return
	}
	v.checkURL(ctx, checker, loc, field, -1, value.Str())
}

func (v *Validator) checkURL(ctx context.Context, checker *urlcheck.Checker, loc Location, field string, index int, url string) {
	fieldName := field
	if index >= 0 {
		fieldName = urlFieldIndex(field, index)
	}

	result := checker.Check(ctx, url)
	switch result.Outcome {
	case urlcheck.OutcomeOK, urlcheck.OutcomeIgnored:
		// nothing to report
	case urlcheck.OutcomeSuppressed:
		v.sink.Warn(TopicURL, loc, fieldName, url, result.Detail+" (suppressed: "+result.Reason+")")
	case urlcheck.OutcomeFailed:
		v.sink.Report(TopicURL, loc, fieldName, url, result.Detail)
	}
}

// urlFieldIndex locates content URLs by occurrence since they have no field
// name of their own.
func urlFieldIndex(field string, index int) string {
	return field + "[" + strconv.Itoa(index) + "]"
}
