package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SourcesFile is the YAML document accepted by NEWS_SOURCES_FILE.
//
//	news:
//	  sources: [bbc-news, reuters]
//	  blocked_sources: [Google News]
//	  default_country: gb
type SourcesFile struct {
	News struct {
		Sources        []string `yaml:"sources"`
		BlockedSources []string `yaml:"blocked_sources"`
		DefaultCountry string   `yaml:"default_country"`
	} `yaml:"news"`
}

// LoadSourcesFile loads source lists from a YAML file.
// The path comes from the process environment, not from request input.
func LoadSourcesFile(path string) (*SourcesFile, error) {
	// #nosec G304 -- path is operator-provided configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var file SourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}

	for i, s := range file.News.Sources {
		if s == "" {
			return nil, fmt.Errorf("sources[%d] cannot be empty", i)
		}
	}

	return &file, nil
}

// Apply overrides the non-empty lists of the file onto cfg.
func (f *SourcesFile) Apply(cfg *NewsConfig) {
	if len(f.News.Sources) > 0 {
		cfg.Sources = f.News.Sources
	}
	if len(f.News.BlockedSources) > 0 {
		cfg.BlockedSources = f.News.BlockedSources
	}
	if f.News.DefaultCountry != "" {
		cfg.DefaultCountry = f.News.DefaultCountry
	}
}
