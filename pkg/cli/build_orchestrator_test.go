//go:build !integration

package cli

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endoflife-date/eolint/pkg/schema"
	"github.com/endoflife-date/eolint/pkg/urlcheck"
	"github.com/endoflife-date/eolint/pkg/validation"
)

const goodProduct = `---
title: Python
category: lang
permalink: /python
releases:
  - releaseCycle: "3.12"
    releaseDate: 2023-10-02
    eol: false
---
`

const badProduct = `---
title: Ruby
category: not-a-category
permalink: /ruby
releases:
  - releaseCycle: "3.3"
    releaseDate: 2023-12-25
    eol: false
---
`

func writeProduct(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func resultFor(t *testing.T, results []RecordResult, name string) RecordResult {
	t.Helper()
	for _, r := range results {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no result for record %q", name)
	return RecordResult{}
}

func TestRunBuild_CleanBuild(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeProduct(t, dir, "python.md", goodProduct),
		writeProduct(t, dir, "go.md", goodProduct),
	}

	sink := validation.NewSink()
	results, err := RunBuild(context.Background(), BuildConfig{Files: files}, sink)

	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, result := range results {
		assert.Equal(t, StateEnriched, result.State)
		assert.Zero(t, result.Errors)
		assert.Zero(t, result.Warnings)
	}
	assert.Equal(t, int64(0), sink.Count())
}

func TestRunBuild_AbortsOnValidationErrors(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeProduct(t, dir, "python.md", goodProduct),
		writeProduct(t, dir, "ruby.md", badProduct),
	}

	sink := validation.NewSink()
	results, err := RunBuild(context.Background(), BuildConfig{Files: files}, sink)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation error")
	require.Len(t, results, 2, "every record gets a result even on abort")

	assert.Zero(t, resultFor(t, results, "python").Errors, "errors should attribute to the bad record only")
	assert.Equal(t, 1, resultFor(t, results, "ruby").Errors)
}

func TestRunBuild_FailedLoad(t *testing.T) {
	dir := t.TempDir()
	files := []string{writeProduct(t, dir, "broken.md", "no frontmatter here")}

	sink := validation.NewSink()
	results, err := RunBuild(context.Background(), BuildConfig{Files: files}, sink)

	require.Error(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "broken", results[0].Name, "name comes from the file name")
	assert.Equal(t, StateFailedLoad, results[0].State)
	assert.Equal(t, 1, results[0].Errors)
}

func TestRunBuild_URLPhase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/dead" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	dir := t.TempDir()
	files := []string{writeProduct(t, dir, "python.md", `---
title: Python
category: lang
permalink: /python
releasePolicyLink: `+server.URL+`/policy
releases:
  - releaseCycle: "3.12"
    releaseDate: 2023-10-02
    eol: false
    link: `+server.URL+`/dead
---
`)}

	checker, err := urlcheck.NewChecker(
		urlcheck.WithPolicies(nil, nil),
		urlcheck.WithClient(&http.Client{Timeout: 2 * time.Second}),
	)
	require.NoError(t, err)

	sink := validation.NewSink()
	results, buildErr := RunBuild(context.Background(), BuildConfig{
		Files:      files,
		CheckURLs:  true,
		URLWorkers: 2,
		URLChecker: checker,
	}, sink)

	require.Error(t, buildErr)
	require.Len(t, results, 1)
	assert.Equal(t, StatePostValidated, results[0].State)
	assert.Equal(t, 1, results[0].Errors, "only the dead link should fail")
}

func TestRunBuild_URLPhaseSkippedByDefault(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer server.Close()

	dir := t.TempDir()
	files := []string{writeProduct(t, dir, "python.md", `---
title: Python
category: lang
permalink: /python
releasePolicyLink: `+server.URL+`/policy
releases:
  - releaseCycle: "3.12"
    releaseDate: 2023-10-02
    eol: false
---
`)}

	sink := validation.NewSink()
	_, err := RunBuild(context.Background(), BuildConfig{Files: files}, sink)

	require.NoError(t, err)
	assert.Zero(t, hits, "no URL is fetched unless URL checking is enabled")
}

type settingEnricher struct{}

func (settingEnricher) Enrich(_ context.Context, p *schema.Product) error {
	p.Fields["iconUrl"] = schema.StringValue("https://example.com/icon.svg")
	return nil
}

type failingEnricher struct{}

func (failingEnricher) Enrich(context.Context, *schema.Product) error {
	return errors.New("catalog unavailable")
}

func TestRunBuild_EnricherRuns(t *testing.T) {
	dir := t.TempDir()
	files := []string{writeProduct(t, dir, "python.md", goodProduct)}

	sink := validation.NewSink()
	results, err := RunBuild(context.Background(), BuildConfig{
		Files:    files,
		Enricher: settingEnricher{},
	}, sink)

	require.NoError(t, err)
	assert.Equal(t, StateEnriched, results[0].State)
}

func TestRunBuild_EnricherFailureReportsAndContinues(t *testing.T) {
	dir := t.TempDir()
	files := []string{writeProduct(t, dir, "python.md", goodProduct)}

	sink := validation.NewSink()
	results, err := RunBuild(context.Background(), BuildConfig{
		Files:    files,
		Enricher: failingEnricher{},
	}, sink)

	require.Error(t, err)
	assert.Equal(t, StatePreValidated, results[0].State)
	assert.Equal(t, 1, resultFor(t, results, "python").Errors)

	violations := sink.Violations()
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Reason, "catalog unavailable")
}
