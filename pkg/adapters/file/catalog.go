package file

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/traits/pkg/domain"
	"gopkg.in/yaml.v3"
)

// CatalogFile represents the structure of traits.yaml.
type CatalogFile struct {
	Traits []domain.Spec `yaml:"traits" json:"traits"`
}

// LoadSpecs reads a catalog file (YAML or JSON) and returns its trait specs in file order.
// A missing file yields an empty catalog.
func LoadSpecs(path string) ([]domain.Spec, error) {
	specs, err := ReadSpecs(path)
	if err != nil {
		return nil, err
	}
	if err := CheckNames(specs); err != nil {
		return nil, err
	}
	return specs, nil
}

// ReadSpecs is LoadSpecs without the name checks, for callers that report
// every problem themselves.
func ReadSpecs(path string) ([]domain.Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Spec{}, nil
		}
		return nil, fmt.Errorf("failed to read trait catalog: %w", err)
	}
	return DecodeSpecs(data, filepath.Ext(path))
}

// ParseSpecs decodes catalog content and rejects missing or duplicate names.
// ext selects the format: ".json" is JSON, anything else is YAML.
func ParseSpecs(data []byte, ext string) ([]domain.Spec, error) {
	specs, err := DecodeSpecs(data, ext)
	if err != nil {
		return nil, err
	}
	if err := CheckNames(specs); err != nil {
		return nil, err
	}
	return specs, nil
}

// DecodeSpecs decodes catalog content. Unknown keys are rejected in both formats.
func DecodeSpecs(data []byte, ext string) ([]domain.Spec, error) {
	var cfg CatalogFile

	if strings.ToLower(ext) == ".json" {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse trait catalog json: %w", err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes as io.EOF: treat it as an empty catalog.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse trait catalog yaml: %w", err)
		}
	}

	if cfg.Traits == nil {
		cfg.Traits = []domain.Spec{}
	}
	return cfg.Traits, nil
}

// CheckNames fails on the first spec without a name or with a name already seen.
func CheckNames(specs []domain.Spec) error {
	seen := make(map[string]bool, len(specs))
	for i, spec := range specs {
		if strings.TrimSpace(spec.Name) == "" {
			return fmt.Errorf("trait #%d: %w: missing name", i+1, domain.ErrInvalidParameter)
		}
		if seen[spec.Name] {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateTrait, spec.Name)
		}
		seen[spec.Name] = true
	}
	return nil
}

// Loader implements ports.SpecLoader for a catalog file.
// The file is re-read on every call.
type Loader struct {
	Path string
}

// NewLoader creates a Loader for the catalog at path.
func NewLoader(path string) *Loader {
	return &Loader{Path: path}
}

// LoadSpecs reads the catalog file.
func (l *Loader) LoadSpecs() ([]domain.Spec, error) {
	return LoadSpecs(l.Path)
}

// RawSpecs reads the catalog file without the name checks.
func (l *Loader) RawSpecs() ([]domain.Spec, error) {
	return ReadSpecs(l.Path)
}
