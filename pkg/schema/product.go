package schema

// Product is one product's full lifecycle record: the frontmatter fields of
// a product file plus its markdown body. Name comes from the file name and
// is used only to locate errors. Products are read-only snapshots; the
// validation engine never mutates them.
type Product struct {
	Name   string
	Fields map[string]Value
	Body   string
}

// Field returns the named top-level field, or Absent.
func (p *Product) Field(name string) Value {
	return p.Fields[name]
}

// Releases returns the entries of the releases list that are maps. Non-map
// entries are skipped here; the releases type check reports them separately.
func (p *Product) Releases() []Release {
	list := p.Field("releases").List()
	releases := make([]Release, 0, len(list))
	for _, item := range list {
		if item.Kind() == KindMap {
			releases = append(releases, Release{Fields: item.Map()})
		}
	}
	return releases
}

// CustomFields returns the declared custom field descriptors.
func (p *Product) CustomFields() []CustomField {
	list := p.Field("customFields").List()
	fields := make([]CustomField, 0, len(list))
	for _, item := range list {
		if item.Kind() == KindMap {
			fields = append(fields, CustomField{Fields: item.Map()})
		}
	}
	return fields
}

// Identifiers returns the identifier descriptors.
func (p *Product) Identifiers() []Value {
	return p.Field("identifiers").List()
}

// Release is one version/cycle entry within a Product's releases list.
type Release struct {
	Fields map[string]Value
}

// Field returns the named release field, or Absent.
func (r Release) Field(name string) Value {
	return r.Fields[name]
}

// Cycle returns the releaseCycle value rendered as a string, for locations.
func (r Release) Cycle() string {
	return r.Field("releaseCycle").String()
}

// OutOfOrder reports whether this release is exempt from the
// chronological-ordering invariant.
func (r Release) OutOfOrder() bool {
	return r.Field("outOfOrder").Bool()
}

// CustomField is a Record-declared extra column usable inside every Release.
type CustomField struct {
	Fields map[string]Value
}

// Field returns the named descriptor field, or Absent.
func (c CustomField) Field(name string) Value {
	return c.Fields[name]
}

// Name returns the key under which release values for this column appear.
func (c CustomField) Name() string {
	return c.Field("name").Str()
}

// Categories is the fixed set of valid product categories.
var Categories = []string{
	"app",
	"db",
	"device",
	"framework",
	"lang",
	"library",
	"os",
	"server-app",
	"service",
	"standard",
}

// CustomFieldDisplays is the fixed set of valid customField display modes.
var CustomFieldDisplays = []string{
	"api-only",
	"release-column",
	"top",
}

// LifecycleDimensions are the per-dimension column flags a product may
// enable. Each dimension <dim> pairs a product-level <dim>Column switch with
// the matching per-release field.
var LifecycleDimensions = []string{
	"eol",
	"eoas",
	"release",
	"releaseDate",
	"discontinued",
	"eoes",
}

// WarnThresholdDimensions are the dimensions that additionally accept a
// <dim>WarnThreshold number on the product.
var WarnThresholdDimensions = []string{
	"eol",
	"eoas",
	"discontinued",
	"eoes",
}

// StandardReleaseFields are the release keys defined by the schema itself.
// Any other key on a release must be declared in the product's customFields.
var StandardReleaseFields = map[string]bool{
	"releaseCycle":      true,
	"releaseLabel":      true,
	"codename":          true,
	"releaseDate":       true,
	"eoas":              true,
	"eol":               true,
	"discontinued":      true,
	"eoes":              true,
	"lts":               true,
	"latest":            true,
	"latestReleaseDate": true,
	"link":              true,
	"outOfOrder":        true,
}
