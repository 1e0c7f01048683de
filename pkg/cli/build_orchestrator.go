package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/endoflife-date/eolint/pkg/console"
	"github.com/endoflife-date/eolint/pkg/identifiers"
	"github.com/endoflife-date/eolint/pkg/logger"
	"github.com/endoflife-date/eolint/pkg/parser"
	"github.com/endoflife-date/eolint/pkg/schema"
	"github.com/endoflife-date/eolint/pkg/urlcheck"
	"github.com/endoflife-date/eolint/pkg/validation"
)

var buildLog = logger.New("cli:build_orchestrator")

// RecordState tracks how far a record made it through the build pipeline.
type RecordState string

const (
	// StateFailedLoad - the file could not be read or parsed.
	StateFailedLoad RecordState = "failed-load"
	// StatePreValidated - the schema pass ran, enrichment has not.
	StatePreValidated RecordState = "pre-validated"
	// StateEnriched - the enrichment hook ran.
	StateEnriched RecordState = "enriched"
	// StatePostValidated - the URL pass ran.
	StatePostValidated RecordState = "post-validated"
)

// Enricher fills in record fields between the two validation passes, for
// example resolving icon URLs from an external catalog. Enrichment errors are
// reported against the record but never stop the build.
type Enricher interface {
	Enrich(ctx context.Context, p *schema.Product) error
}

// NoopEnricher is the default enricher; records pass through unchanged.
type NoopEnricher struct{}

func (NoopEnricher) Enrich(context.Context, *schema.Product) error { return nil }

// BuildConfig configures one validation build.
type BuildConfig struct {
	Files      []string
	CheckURLs  bool
	URLWorkers int
	Verbose    bool

	// Enricher and URLChecker default to NoopEnricher and a checker with the
	// embedded policies. Tests swap them out.
	Enricher   Enricher
	Renderer   identifiers.Renderer
	URLChecker *urlcheck.Checker
}

// RecordResult is the per-record outcome of one build.
type RecordResult struct {
	Name     string      `json:"name"`
	State    RecordState `json:"state"`
	Errors   int         `json:"errors"`
	Warnings int         `json:"warnings"`
}

type trackedRecord struct {
	product *schema.Product
	state   RecordState
}

// RunBuild executes the full validation pipeline over config.Files: load,
// schema pass, enrichment, and, when enabled, the concurrent URL pass. Every
// record is carried through every phase regardless of earlier violations;
// the single abort decision is made at the end from the sink's error count.
func RunBuild(ctx context.Context, config BuildConfig, sink *validation.Sink) ([]RecordResult, error) {
	buildLog.Printf("Starting build: files=%d, checkURLs=%v, workers=%d", len(config.Files), config.CheckURLs, config.URLWorkers)

	enricher := config.Enricher
	if enricher == nil {
		enricher = NoopEnricher{}
	}
	renderer := config.Renderer
	if renderer == nil {
		renderer = identifiers.NewTemplateRenderer()
	}
	validator := validation.NewValidator(sink, renderer)

	records := make(map[string]*trackedRecord, len(config.Files))
	var names []string
	for _, file := range config.Files {
		product, err := parser.LoadProductFile(file)
		if err != nil {
			name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
			sink.Report(validation.TopicSchema, validation.Location{Record: name}, "", "", err.Error())
			records[name] = &trackedRecord{state: StateFailedLoad}
			names = append(names, name)
			continue
		}
		records[product.Name] = &trackedRecord{product: product, state: StatePreValidated}
		names = append(names, product.Name)
	}

	for _, name := range names {
		record := records[name]
		if record.product == nil {
			continue
		}
		before := sink.Count()
		validator.Validate(record.product)
		if config.Verbose {
			fmt.Fprintln(os.Stderr, console.FormatVerboseMessage(
				fmt.Sprintf("validated %s: %d error(s)", name, sink.Count()-before)))
		}
	}

	for _, name := range names {
		record := records[name]
		if record.product == nil {
			continue
		}
		if err := enricher.Enrich(ctx, record.product); err != nil {
			sink.Report(validation.TopicSchema, validation.Location{Record: name}, "", "", fmt.Sprintf("enrichment failed: %v", err))
			continue
		}
		record.state = StateEnriched
	}

	if config.CheckURLs {
		checker := config.URLChecker
		if checker == nil {
			var err error
			checker, err = urlcheck.NewChecker()
			if err != nil {
				return nil, err
			}
		}

		workers := config.URLWorkers
		if workers < 1 {
			workers = 1
		}
		p := pool.New().WithMaxGoroutines(workers)
		for _, name := range names {
			record := records[name]
			if record.product == nil || record.state != StateEnriched {
				continue
			}
			p.Go(func() {
				validator.ValidateURLs(ctx, record.product, checker)
			})
		}
		p.Wait()

		for _, name := range names {
			record := records[name]
			if record.state == StateEnriched {
				record.state = StatePostValidated
			}
		}
	}

	results := summarizeRecords(names, records, sink.Violations())

	if count := sink.Count(); count > 0 {
		console.PrintError("Build aborted: %d validation error(s)", count)
		return results, fmt.Errorf("%d validation error(s)", count)
	}

	buildLog.Printf("Build passed: records=%d", len(results))
	return results, nil
}

// summarizeRecords attributes every violation back to its record by location
// prefix. Locations are the record name, "name#cycle", or
// "name.customFields.x", so an exact match or a "#"/"." separator after the
// name identifies the record.
func summarizeRecords(names []string, records map[string]*trackedRecord, violations []validation.Violation) []RecordResult {
	results := make([]RecordResult, 0, len(names))
	for _, name := range names {
		result := RecordResult{Name: name, State: records[name].state}
		for _, v := range violations {
			if !violationBelongsTo(v, name) {
				continue
			}
			if v.Severity == "error" {
				result.Errors++
			} else {
				result.Warnings++
			}
		}
		results = append(results, result)
	}
	return results
}

func violationBelongsTo(v validation.Violation, name string) bool {
	if v.Location == name {
		return true
	}
	return strings.HasPrefix(v.Location, name+"#") || strings.HasPrefix(v.Location, name+".")
}
