package domain

import (
	"strings"
	"time"
)

// Placeholder is the token substituted with the encoded search term in
// bang URL templates (DuckDuckGo bang dataset convention).
const Placeholder = "{{{s}}}"

// BangDef is one entry of the static bang dictionary.
//
// The dictionary is loaded once and shared read-only across requests, so a
// BangDef must never be mutated after load.
type BangDef struct {
	Trigger     string // keyword without the leading "!", e.g. "g"
	URLTemplate string // search URL containing Placeholder
	HomeDomain  string // bare domain used for term-less queries, e.g. "www.google.com"
}

// SearchURL returns the template with the placeholder replaced by the
// percent-encoded term.
func (b BangDef) SearchURL(term string) string {
	return strings.ReplaceAll(b.URLTemplate, Placeholder, EncodeTerm(term))
}

// HomeURL returns the https URL of the bang's home domain.
func (b BangDef) HomeURL() string {
	return EnsureHTTPS(b.HomeDomain)
}

// ActionKind discriminates what a custom bang does when dispatched.
type ActionKind string

const (
	// ActionRedirect sends the user to the stored URL verbatim.
	ActionRedirect ActionKind = "redirect"
	// ActionSearch substitutes the search term into the stored URL template.
	ActionSearch ActionKind = "search"
)

// CustomBang is a user-defined trigger persisted in the relational store.
// (UserID, Trigger) is unique; Trigger keeps its leading "!".
type CustomBang struct {
	ID         int64
	UserID     int64
	Trigger    string
	Name       string
	URL        string
	Kind       ActionKind
	UsageCount int64
	LastReadAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RedirectURL resolves the navigation target for this bang given the
// search term, dispatching on the action kind.
func (c CustomBang) RedirectURL(term string) string {
	if c.Kind == ActionSearch {
		return strings.ReplaceAll(c.URL, Placeholder, EncodeTerm(term))
	}
	return c.URL
}

// NormalizeTrigger prefixes a raw trigger token with "!" when missing.
func NormalizeTrigger(raw string) string {
	if strings.HasPrefix(raw, "!") {
		return raw
	}
	return "!" + raw
}
