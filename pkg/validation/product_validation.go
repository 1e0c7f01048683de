package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/endoflife-date/eolint/pkg/identifiers"
	"github.com/endoflife-date/eolint/pkg/logger"
	"github.com/endoflife-date/eolint/pkg/schema"
)

var productValidationLog = logger.New("validation:product")

var (
	// tags is a single space-separated list of slugs
	tagsPattern = regexp.MustCompile(`^[a-z0-9+.-]+( [a-z0-9+.-]+)*$`)

	// permalink and alternate_urls are absolute site paths
	pathPattern = regexp.MustCompile(`^/[a-zA-Z0-9._/-]+$`)

	// URL-shaped string fields
	urlPattern = regexp.MustCompile(`^https?://\S+$`)

	// releaseCycle slugs: 3.12, 2019, 8-jdk, core-3+
	cyclePattern = regexp.MustCompile(`^[a-zA-Z0-9.+_-]+$`)
)

// Columns enabled when the product does not say otherwise. The release,
// releaseDate, and eol dimensions render by default upstream; the extended
// dimensions are opt-in.
var defaultEnabledColumns = map[string]bool{
	"eol":         true,
	"release":     true,
	"releaseDate": true,
}

// Validator applies the rule set to product records. It is a pure function
// of the record and its collaborators: every violation flows to the sink and
// nothing short-circuits, so running it twice on the same record reports the
// same set twice.
type Validator struct {
	sink     *Sink
	renderer identifiers.Renderer
	now      func() time.Time
}

// NewValidator creates a validator reporting into sink and rendering
// identifier descriptors through renderer.
func NewValidator(sink *Sink, renderer identifiers.Renderer) *Validator {
	return &Validator{sink: sink, renderer: renderer, now: time.Now}
}

// WithNow fixes the validator's reference time, used by tests to pin the
// too-far-in-future boundary.
func (v *Validator) WithNow(now func() time.Time) *Validator {
	v.now = now
	return v
}

// Validate runs the pre-enrichment pass over one product record.
func (v *Validator) Validate(p *schema.Product) {
	productValidationLog.Printf("Validating product %s", p.Name)

	loc := Location{Record: p.Name}
	rules := NewRules(v.sink, loc, v.now())

	v.validateTopLevel(rules, p)
	v.validateIdentifiers(loc, p)
	v.validateAuto(rules, p)
	v.validateCustomFields(rules, loc, p)
	v.validateDuplicateCycles(loc, p)
	v.validateReleases(rules, p)

	productValidationLog.Printf("Finished product %s: errors=%d", p.Name, v.sink.Count())
}

// validateTopLevel checks the product's scalar fields and per-dimension
// column configuration.
func (v *Validator) validateTopLevel(rules Rules, p *schema.Product) {
	rules.RequiredString("title", p.Field("title"))
	rules.OneOf("category", p.Field("category"), schema.Categories)
	rules.Matches("tags", p.Field("tags"), tagsPattern, "a space-separated list of tag slugs")
	rules.Matches("permalink", p.Field("permalink"), pathPattern, "an absolute site path")
	rules.List("alternate_urls", p.Field("alternate_urls"))
	rules.Matches("alternate_urls", p.Field("alternate_urls"), pathPattern, "an absolute site path")

	rules.String("versionCommand", p.Field("versionCommand"))
	rules.Matches("releasePolicyLink", p.Field("releasePolicyLink"), urlPattern, "a URL")
	rules.Matches("releaseImage", p.Field("releaseImage"), urlPattern, "a URL")
	rules.Matches("changelogTemplate", p.Field("changelogTemplate"), urlPattern, "a URL")
	rules.String("LTSLabel", p.Field("LTSLabel"))

	for _, dim := range schema.LifecycleDimensions {
		rules.BoolOrString(dim+"Column", p.Field(dim+"Column"))
	}
	for _, dim := range schema.WarnThresholdDimensions {
		rules.Number(dim+"WarnThreshold", p.Field(dim+"WarnThreshold"))
	}

	rules.List("releases", p.Field("releases"))
	rules.List("customFields", p.Field("customFields"))
	rules.List("identifiers", p.Field("identifiers"))
}

// validateIdentifiers renders each identifier descriptor through the
// external renderer; a rendering failure becomes a per-identifier validation
// error, never a propagated one.
func (v *Validator) validateIdentifiers(loc Location, p *schema.Product) {
	for i, descriptor := range p.Identifiers() {
		if _, err := v.renderer.Render(descriptor); err != nil {
			field := fmt.Sprintf("identifiers[%d]", i)
			v.sink.Report(TopicIdentifier, loc, field, descriptor, err.Error())
		}
	}
}

// validateAuto checks the auto sub-object when present.
func (v *Validator) validateAuto(rules Rules, p *schema.Product) {
	auto := p.Field("auto")
	if auto.IsAbsent() {
		return
	}
	if auto.Kind() != schema.KindMap {
		rules.report(TopicSchema, "auto", auto, fmt.Sprintf("must be a map, got %s", auto.Kind()))
		return
	}
	rules.List("auto.methods", auto.Map()["methods"])
}

// validateCustomFields checks each declared custom field descriptor.
func (v *Validator) validateCustomFields(rules Rules, loc Location, p *schema.Product) {
	for _, field := range p.CustomFields() {
		fieldLoc := loc
		fieldLoc.CustomField = field.Name()
		fieldRules := rules.At(fieldLoc)

		fieldRules.RequiredString("name", field.Field("name"))
		fieldRules.OneOf("display", field.Field("display"), schema.CustomFieldDisplays)
		if field.Field("display").IsAbsent() {
			fieldRules.report(TopicSchema, "display", field.Field("display"), "is required")
		}
		fieldRules.RequiredString("label", field.Field("label"))
		fieldRules.String("description", field.Field("description"))
		fieldRules.Matches("link", field.Field("link"), urlPattern, "a URL")
	}
}

// validateDuplicateCycles reports once when any releaseCycle value appears
// more than once within the record.
func (v *Validator) validateDuplicateCycles(loc Location, p *schema.Product) {
	seen := make(map[string]int)
	for _, release := range p.Releases() {
		seen[release.Cycle()]++
	}

	var duplicates []string
	for cycle, count := range seen {
		if count > 1 {
			duplicates = append(duplicates, cycle)
		}
	}
	if len(duplicates) == 0 {
		return
	}

	sort.Strings(duplicates)
	v.sink.Report(TopicSchema, loc, "releases", strings.Join(duplicates, ", "),
		"releaseCycle values must be unique within a product")
}

// columnEnabled reports whether the product renders the given lifecycle
// dimension. A string column value is a custom label, which enables it; type
// errors are reported by the top-level checks and fall back to the default.
func columnEnabled(p *schema.Product, dim string) bool {
	v := p.Field(dim + "Column")
	switch v.Kind() {
	case schema.KindBool:
		return v.Bool()
	case schema.KindString:
		return true
	default:
		return defaultEnabledColumns[dim]
	}
}
