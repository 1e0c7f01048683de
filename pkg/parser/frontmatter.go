// Package parser loads product files: markdown documents whose YAML
// frontmatter carries the lifecycle record and whose body is free-text
// content that may embed URLs.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/endoflife-date/eolint/pkg/constants"
	"github.com/endoflife-date/eolint/pkg/logger"
	"github.com/endoflife-date/eolint/pkg/schema"
)

var frontmatterLog = logger.New("parser:frontmatter")

const frontmatterDelimiter = "---"

// ParseProduct parses a product document into its record and body. The
// product name is taken from the caller (usually the file name without
// extension) and used only for error locations.
func ParseProduct(name, content string) (*schema.Product, error) {
	frontmatterLog.Printf("Parsing product %s: size=%d bytes", name, len(content))

	frontmatter, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", name, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(frontmatter), &raw); err != nil {
		return nil, fmt.Errorf("product %s: invalid frontmatter: %w", name, err)
	}

	fields := make(map[string]schema.Value, len(raw))
	for key, value := range raw {
		fields[key] = schema.FromYAML(value)
	}

	frontmatterLog.Printf("Parsed product %s: fields=%d, body=%d bytes", name, len(fields), len(body))
	return &schema.Product{Name: name, Fields: fields, Body: body}, nil
}

// LoadProductFile reads and parses a product file from disk.
func LoadProductFile(path string) (*schema.Product, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read product file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ParseProduct(name, string(content))
}

// FindProductFiles returns every product file under dir, sorted by walk
// order. Subdirectories are not descended into; the products directory is a
// flat namespace.
func FindProductFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read products directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == constants.ProductFileExtension {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	frontmatterLog.Printf("Found %d product files in %s", len(files), dir)
	return files, nil
}

// splitFrontmatter separates the YAML frontmatter block from the markdown
// body. The document must start with a --- delimiter line.
func splitFrontmatter(content string) (frontmatter, body string, err error) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")

	if !strings.HasPrefix(normalized, frontmatterDelimiter+"\n") {
		return "", "", fmt.Errorf("missing frontmatter delimiter")
	}

	rest := strings.TrimPrefix(normalized, frontmatterDelimiter+"\n")
	idx := strings.Index(rest, "\n"+frontmatterDelimiter)
	if idx < 0 {
		return "", "", fmt.Errorf("unterminated frontmatter block")
	}

	frontmatter = rest[:idx]
	body = rest[idx+len("\n"+frontmatterDelimiter):]
	// Drop the remainder of the closing delimiter line
	if nl := strings.Index(body, "\n"); nl >= 0 {
		body = body[nl+1:]
	} else {
		body = ""
	}

	return frontmatter, body, nil
}
