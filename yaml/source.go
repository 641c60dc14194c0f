// Package yaml loads per-source crawl configuration from YAML files
// using gopkg.in/yaml.v3.
package yaml

import (
	"os"

	"github.com/Ryder-MHumble/harvest"
	"gopkg.in/yaml.v3"
)

// Source holds the configuration for a single crawled site. Only
// PDFSelector is consumed by the extraction core; the remaining fields
// are carried for the fetch layer.
type Source struct {
	// Name identifies the source in CLI flags and logs.
	Name string `yaml:"name"`

	// URL is the listing page the crawler starts from.
	URL string `yaml:"url"`

	// ListSelector locates article links on the listing page.
	ListSelector string `yaml:"list_selector,omitempty"`

	// ContentSelector narrows an article page to its body.
	ContentSelector string `yaml:"content_selector,omitempty"`

	// PDFSelector locates the official document link on an article
	// page. When empty, the heuristic strategy is used.
	PDFSelector string `yaml:"pdf_selector,omitempty"`
}

// File represents the structure of a sources configuration file.
type File struct {
	Sources []Source `yaml:"sources"`
}

// LoadFile loads source configurations from a YAML file.
// A missing file is reported as ENOTFOUND.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, harvest.Errorf(harvest.ENOTFOUND, "config file %q not found", path)
		}
		return nil, err
	}
	return Parse(data)
}

// Parse parses source configurations from YAML bytes.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, harvest.Errorf(harvest.EINVALID, "invalid sources config: %v", err)
	}
	return &f, nil
}

// FindSource returns the source with the given name.
// Returns ENOTFOUND if no source matches.
func (f *File) FindSource(name string) (*Source, error) {
	for i := range f.Sources {
		if f.Sources[i].Name == name {
			return &f.Sources[i], nil
		}
	}
	return nil, harvest.Errorf(harvest.ENOTFOUND, "source %q not found", name)
}

// ExtractConfig converts the source configuration into the options
// recognized by the extraction core.
func (s *Source) ExtractConfig() harvest.ExtractConfig {
	return harvest.ExtractConfig{PDFSelector: s.PDFSelector}
}
