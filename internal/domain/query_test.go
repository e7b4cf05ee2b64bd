package domain

import (
	"testing"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		trigger     string
		triggerBody string
		embeddedURL string
		searchTerm  string
	}{
		{
			name:       "plain search",
			input:      "golang generics",
			searchTerm: "golang generics",
		},
		{
			name:        "bang with term",
			input:       "!g python",
			trigger:     "!g",
			triggerBody: "g",
			searchTerm:  "python",
		},
		{
			name:        "bang only",
			input:       "!gh",
			trigger:     "!gh",
			triggerBody: "gh",
			searchTerm:  "",
		},
		{
			name:        "bookmark with title and url",
			input:       "!bm My Title https://x.com",
			trigger:     "!bm",
			triggerBody: "bm",
			embeddedURL: "https://x.com",
			searchTerm:  "My Title https://x.com",
		},
		{
			name:        "bookmark url only",
			input:       "!bm https://x.com",
			trigger:     "!bm",
			triggerBody: "bm",
			embeddedURL: "https://x.com",
			searchTerm:  "https://x.com",
		},
		{
			name:        "only first url wins",
			input:       "!bm see https://a.com and https://b.com",
			trigger:     "!bm",
			triggerBody: "bm",
			embeddedURL: "https://a.com",
			searchTerm:  "see https://a.com and https://b.com",
		},
		{
			name:        "add custom bang",
			input:       "!add !x https://example.com",
			trigger:     "!add",
			triggerBody: "add",
			embeddedURL: "https://example.com",
			searchTerm:  "!x https://example.com",
		},
		{
			name:       "url without leading whitespace is not embedded",
			input:      "https://example.com",
			searchTerm: "https://example.com",
		},
		{
			name:       "at-command is not a bang trigger",
			input:      "@settings",
			searchTerm: "@settings",
		},
		{
			name:        "bang trigger is case sensitive",
			input:       "!G python",
			trigger:     "!G",
			triggerBody: "G",
			searchTerm:  "python",
		},
		{
			name:        "surrounding whitespace trimmed",
			input:       "   !w  go   ",
			trigger:     "!w",
			triggerBody: "w",
			searchTerm:  "go",
		},
		{
			name:  "empty query",
			input: "",
		},
		{
			name:        "http url detected",
			input:       "!bm http://plain.example",
			trigger:     "!bm",
			triggerBody: "bm",
			embeddedURL: "http://plain.example",
			searchTerm:  "http://plain.example",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParseQuery(tt.input)

			if p.Trigger != tt.trigger {
				t.Errorf("Trigger = %q, want %q", p.Trigger, tt.trigger)
			}
			if p.TriggerBody != tt.triggerBody {
				t.Errorf("TriggerBody = %q, want %q", p.TriggerBody, tt.triggerBody)
			}
			if p.EmbeddedURL != tt.embeddedURL {
				t.Errorf("EmbeddedURL = %q, want %q", p.EmbeddedURL, tt.embeddedURL)
			}
			if p.SearchTerm != tt.searchTerm {
				t.Errorf("SearchTerm = %q, want %q", p.SearchTerm, tt.searchTerm)
			}
		})
	}
}

func TestEnsureHTTPS(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare domain", "example.com", "https://example.com"},
		{"already https", "https://example.com", "https://example.com"},
		{"http stripped", "http://example.com", "https://example.com"},
		{"leading slashes stripped", "//example.com", "https://example.com"},
		{"http with slashes", "http:///example.com", "https://example.com"},
		{"whitespace trimmed", "  example.com ", "https://example.com"},
		{"path preserved", "example.com/search", "https://example.com/search"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EnsureHTTPS(tt.input); got != tt.want {
				t.Errorf("EnsureHTTPS(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://example.com", true},
		{"http://example.com/path?q=1", true},
		{"example.com", false},
		{"ftp://example.com", false},
		{"https://", false},
		{"", false},
		{"not a url", false},
	}

	for _, tt := range tests {
		if got := IsValidURL(tt.input); got != tt.want {
			t.Errorf("IsValidURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestBangDefURLs(t *testing.T) {
	b := BangDef{
		Trigger:     "g",
		URLTemplate: "https://www.google.com/search?q=" + Placeholder,
		HomeDomain:  "www.google.com",
	}

	if got, want := b.SearchURL("python"), "https://www.google.com/search?q=python"; got != want {
		t.Errorf("SearchURL = %q, want %q", got, want)
	}
	if got, want := b.SearchURL("test search"), "https://www.google.com/search?q=test%20search"; got != want {
		t.Errorf("SearchURL = %q, want %q", got, want)
	}
	if got, want := b.HomeURL(), "https://www.google.com"; got != want {
		t.Errorf("HomeURL = %q, want %q", got, want)
	}
}

func TestCustomBangRedirectURL(t *testing.T) {
	redirect := CustomBang{URL: "https://example.com", Kind: ActionRedirect}
	if got := redirect.RedirectURL("ignored"); got != "https://example.com" {
		t.Errorf("redirect kind = %q, want stored URL verbatim", got)
	}

	search := CustomBang{URL: "https://example.com/?q=" + Placeholder, Kind: ActionSearch}
	if got, want := search.RedirectURL("a b"), "https://example.com/?q=a%20b"; got != want {
		t.Errorf("search kind = %q, want %q", got, want)
	}
}

func TestProviderURL(t *testing.T) {
	tests := []struct {
		provider string
		term     string
		want     string
	}{
		{"duckduckgo", "golang", "https://duckduckgo.com/?q=golang"},
		{"google", "test search", "https://www.google.com/search?q=test%20search"},
		{"yahoo", "x", "https://search.yahoo.com/search?p=x"},
		{"bing", "x", "https://www.bing.com/search?q=x"},
		{"unknown", "x", "https://duckduckgo.com/?q=x"},
		{"", "x", "https://duckduckgo.com/?q=x"},
	}

	for _, tt := range tests {
		if got := ProviderURL(tt.provider, tt.term); got != tt.want {
			t.Errorf("ProviderURL(%q, %q) = %q, want %q", tt.provider, tt.term, got, tt.want)
		}
	}
}

func TestEncodeTerm(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"python", "python"},
		{"test search", "test%20search"},
		{"!doesnotexistanywhere", "!doesnotexistanywhere"},
		{"c++ & go", "c%2B%2B%20%26%20go"},
		{"a/b?c=d", "a%2Fb%3Fc%3Dd"},
		{"don't", "don't"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := EncodeTerm(tt.input); got != tt.want {
			t.Errorf("EncodeTerm(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeTrigger(t *testing.T) {
	if got := NormalizeTrigger("x"); got != "!x" {
		t.Errorf("NormalizeTrigger(x) = %q", got)
	}
	if got := NormalizeTrigger("!x"); got != "!x" {
		t.Errorf("NormalizeTrigger(!x) = %q", got)
	}
}
