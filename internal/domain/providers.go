package domain

import (
	"strings"
)

// DefaultProvider is used for anonymous searches and as the fallback when a
// user has no provider preference.
const DefaultProvider = "duckduckgo"

// searchProviders maps a provider key to its search URL template.
var searchProviders = map[string]string{
	"duckduckgo": "https://duckduckgo.com/?q=" + Placeholder,
	"google":     "https://www.google.com/search?q=" + Placeholder,
	"yahoo":      "https://search.yahoo.com/search?p=" + Placeholder,
	"bing":       "https://www.bing.com/search?q=" + Placeholder,
}

// ProviderURL returns the provider's search URL for term. Unknown provider
// keys fall back to DuckDuckGo.
func ProviderURL(provider, term string) string {
	tmpl, ok := searchProviders[provider]
	if !ok {
		tmpl = searchProviders[DefaultProvider]
	}
	return strings.ReplaceAll(tmpl, Placeholder, EncodeTerm(term))
}

// DirectCommands maps exact query strings to in-app navigation paths for
// authenticated users.
var DirectCommands = map[string]string{
	"@a":         "/actions",
	"@actions":   "/actions",
	"@api":       "/api-docs",
	"@b":         "/",
	"@bang":      "/",
	"@bm":        "/bookmarks",
	"@bookmarks": "/bookmarks",
	"@data":      "/settings/data",
	"@s":         "/settings",
	"@settings":  "/settings",
}

// SystemBangs are command triggers reserved by the application; user bangs
// may not shadow them.
var SystemBangs = map[string]bool{
	"!add": true,
	"!bm":  true,
}
