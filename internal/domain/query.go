package domain

import (
	"regexp"
	"strings"
)

// ParsedQuery is the decomposition of a raw search query.
//
// Trigger keeps its leading "!" while TriggerBody is the bare keyword used
// for dictionary lookups. EmbeddedURL is the first http(s) token found after
// whitespace; later URL-looking tokens (e.g. inside a bookmark title) are
// ignored on purpose.
type ParsedQuery struct {
	Trigger     string // "!g" for "!g python", empty when absent
	TriggerBody string // "g" for "!g python", empty when absent
	EmbeddedURL string // first "http(s)://..." token, empty when absent
	SearchTerm  string // query with the leading trigger stripped and trimmed
}

var (
	triggerRe = regexp.MustCompile(`^(!\w+)`)
	urlRe     = regexp.MustCompile(`\s+(https?://\S+)`)
)

// ParseQuery decomposes a raw query into trigger, embedded URL and search
// term. It is pure and total: absent parts come back as empty strings.
// Trigger matching is case-sensitive, like the bang dictionary keys.
func ParseQuery(query string) ParsedQuery {
	trimmed := strings.TrimSpace(query)

	p := ParsedQuery{SearchTerm: trimmed}

	if m := triggerRe.FindStringSubmatch(trimmed); m != nil {
		p.Trigger = m[1]
		p.TriggerBody = m[1][1:]
		p.SearchTerm = strings.TrimSpace(trimmed[len(m[1]):])
	}

	if m := urlRe.FindStringSubmatch(trimmed); m != nil {
		p.EmbeddedURL = m[1]
	}

	return p
}

// HasTrigger reports whether the query started with a "!" command token.
func (p ParsedQuery) HasTrigger() bool {
	return p.Trigger != ""
}
