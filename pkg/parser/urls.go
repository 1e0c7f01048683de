package parser

import (
	"regexp"

	"github.com/endoflife-date/eolint/pkg/logger"
)

var urlsLog = logger.New("parser:urls")

// The three ways markdown-like content embeds a URL. Occurrences are
// reported independently: a URL appearing under several patterns (or several
// times) is returned once per occurrence, not deduplicated.
var (
	// Inline link targets: [text](https://example.com)
	inlineLinkPattern = regexp.MustCompile(`\]\((https?://[^)\s]+)\)`)

	// Angle-bracket autolinks: <https://example.com>
	autolinkPattern = regexp.MustCompile(`<(https?://[^>\s]+)>`)

	// Reference-style link definitions: [label]: https://example.com
	referenceLinkPattern = regexp.MustCompile(`(?m)^\s*\[[^\]]+\]:\s+(https?://\S+)`)
)

// ExtractURLs returns every URL embedded in markdown-like text, in pattern
// order then occurrence order.
func ExtractURLs(text string) []string {
	var urls []string
	for _, pattern := range []*regexp.Regexp{inlineLinkPattern, autolinkPattern, referenceLinkPattern} {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			urls = append(urls, match[1])
		}
	}

	urlsLog.Printf("Extracted %d embedded URLs from %d bytes of content", len(urls), len(text))
	return urls
}
