// Package constants holds the named constants shared across eolint.
//
// Thresholds and timeouts live here rather than inline at their call sites so
// that a deployment can reason about them in one place. The environment
// settings in pkg/cli may override the tunable ones at startup.
package constants

import "time"

// CLIName is the binary name used in help text and examples.
const CLIName = "eolint"

// DefaultProductsDir is the directory scanned for product files when no
// explicit files are given on the command line.
const DefaultProductsDir = "products"

// ProductFileExtension is the extension of product record files.
const ProductFileExtension = ".md"

// FutureReleaseWindow is how far in the future a releaseDate may lie before
// it is reported as an error. Teams pre-publish releases up to a week ahead,
// so the boundary is inclusive: today+7 passes, today+8 fails.
const FutureReleaseWindow = 7 * 24 * time.Hour

// URLConnectTimeout bounds the TCP/TLS connection phase of a URL check.
const URLConnectTimeout = 3 * time.Second

// URLReadTimeout bounds the full request/response exchange of a URL check,
// including redirects. A hanging host can never stall a build past this.
const URLReadTimeout = 10 * time.Second

// URLCheckUserAgent is sent on every URL check. Several sites reject Go's
// default agent outright, so the string names the project and links to it.
const URLCheckUserAgent = "eolint (+https://endoflife.date)"

// DefaultURLWorkers is the number of records whose URL phases run
// concurrently when URL checking is enabled.
const DefaultURLWorkers = 8

// CheckURLsEnvVar is the environment switch that enables the URL-checking
// phase. URL checking is expensive and off by default.
const CheckURLsEnvVar = "EOL_CHECK_URLS"
