package urlcheck

import (
	_ "embed"
	"strings"

	"github.com/goccy/go-yaml"
)

// PrefixRule pairs a URL prefix with the human reason it is listed.
// Matching is case-sensitive; tables are ordered and the first matching
// prefix wins.
type PrefixRule struct {
	Prefix string `yaml:"prefix"`
	Reason string `yaml:"reason"`
}

// The ignore and suppress tables are hand-maintained configuration, not
// logic. They ship embedded so the binary carries its own curation.
var (
	//go:embed config/ignore.yml
	ignoreConfig []byte

	//go:embed config/suppress.yml
	suppressConfig []byte
)

// DefaultPolicies returns the curated ignore and suppress tables.
func DefaultPolicies() (ignore, suppress []PrefixRule, err error) {
	if err = yaml.Unmarshal(ignoreConfig, &ignore); err != nil {
		return nil, nil, err
	}
	if err = yaml.Unmarshal(suppressConfig, &suppress); err != nil {
		return nil, nil, err
	}
	return ignore, suppress, nil
}

// matchPrefix returns the first rule whose prefix matches url, or nil.
func matchPrefix(rules []PrefixRule, url string) *PrefixRule {
	for i := range rules {
		if strings.HasPrefix(url, rules[i].Prefix) {
			return &rules[i]
		}
	}
	return nil
}
