package bangs

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wajeht/bang/internal/domain"
)

// datasetEntry is one record of the bundled bang dataset. The shape follows
// the DuckDuckGo export: t = trigger, u = URL template, d = home domain.
type datasetEntry struct {
	Trigger    string `json:"t"`
	URL        string `json:"u"`
	HomeDomain string `json:"d"`
}

// localEntry is one record of the optional local overrides file.
type localEntry struct {
	Trigger string `yaml:"trigger"`
	URL     string `yaml:"url"`
	Domain  string `yaml:"domain"`
}

// Loader reads the bundled JSON dataset plus an optional YAML overrides
// file. Overrides win over dataset entries with the same trigger.
//
// The bundled data/bangs.json is a small starter set. For the full
// dictionary (~13k triggers), download https://duckduckgo.com/bang.js —
// the same t/u/d record shape — to the BANG_DATASET_FILE path.
type Loader struct {
	datasetPath string
	localPath   string // empty = no local overrides
}

// NewLoader creates a dictionary loader.
func NewLoader(datasetPath, localPath string) *Loader {
	return &Loader{
		datasetPath: datasetPath,
		localPath:   localPath,
	}
}

// Load reads and parses both sources into a fresh snapshot.
func (l *Loader) Load() (*Dict, error) {
	data, err := os.ReadFile(l.datasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read bang dataset: %w", err)
	}

	var entries []datasetEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse bang dataset: %w", err)
	}

	defs := make([]domain.BangDef, 0, len(entries))
	for _, e := range entries {
		if e.Trigger == "" {
			continue
		}
		defs = append(defs, domain.BangDef{
			Trigger:     e.Trigger,
			URLTemplate: e.URL,
			HomeDomain:  e.HomeDomain,
		})
	}

	if l.localPath != "" {
		local, err := l.loadLocal()
		if err != nil {
			return nil, err
		}
		defs = append(defs, local...)
	}

	return NewDict(defs), nil
}

func (l *Loader) loadLocal() ([]domain.BangDef, error) {
	data, err := os.ReadFile(l.localPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local bangs file: %w", err)
	}

	var entries []localEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse local bangs yaml: %w", err)
	}

	defs := make([]domain.BangDef, 0, len(entries))
	for _, e := range entries {
		if e.Trigger == "" {
			continue
		}
		defs = append(defs, domain.BangDef{
			Trigger:     e.Trigger,
			URLTemplate: e.URL,
			HomeDomain:  e.Domain,
		})
	}
	return defs, nil
}
