package worksheet

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/common"
	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/quantity"
)

// Format is a worksheet encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat is returned for file extensions other than .yaml, .yml and .toml
var ErrUnknownFormat = errors.New("unknown worksheet format")

// Sheet is a list of named measurements
type Sheet struct {
	// Divisor applies to every entry that does not set its own.
	Divisor      *float64 `yaml:"divisor,omitempty" toml:"divisor,omitempty"`
	Measurements []Entry  `yaml:"measurements" toml:"measurements"`
}

// Entry describes one measurement. Exactly one of Constant, Single or the
// summary fields (Samples, Mean, N, Sigma, Uncertainty) is expected.
// Tolerance is required for everything but Constant.
type Entry struct {
	Name        string    `yaml:"name" toml:"name"`
	Samples     []float64 `yaml:"samples,omitempty" toml:"samples,omitempty"`
	Mean        *float64  `yaml:"mean,omitempty" toml:"mean,omitempty"`
	N           *int      `yaml:"n,omitempty" toml:"n,omitempty"`
	Sigma       *float64  `yaml:"sigma,omitempty" toml:"sigma,omitempty"`
	Uncertainty *float64  `yaml:"uncertainty,omitempty" toml:"uncertainty,omitempty"`
	Tolerance   *float64  `yaml:"tolerance,omitempty" toml:"tolerance,omitempty"`
	Divisor     *float64  `yaml:"divisor,omitempty" toml:"divisor,omitempty"`
	Single      *float64  `yaml:"single,omitempty" toml:"single,omitempty"`
	Constant    *float64  `yaml:"constant,omitempty" toml:"constant,omitempty"`
}

// Result is one reduced measurement
type Result struct {
	Name     string
	Quantity quantity.Quantity
}

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Load reads and parses a worksheet file
func Load(path string) (*Sheet, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes a worksheet. Unknown keys are rejected so typos such as
// "sigm" fail loudly instead of silently dropping data.
func Parse(data []byte, format Format) (*Sheet, error) {
	var sheet Sheet
	switch format {
	case FormatYAML:
		if err := yaml.UnmarshalWithOptions(data, &sheet, yaml.DisallowUnknownField()); err != nil {
			return nil, fmt.Errorf("failed to parse YAML worksheet: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&sheet); err != nil {
			return nil, fmt.Errorf("failed to parse TOML worksheet: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := sheet.validate(); err != nil {
		return nil, err
	}
	return &sheet, nil
}

func (s *Sheet) validate() error {
	if len(s.Measurements) == 0 {
		return fmt.Errorf("%w: worksheet has no measurements", common.ErrInvalidInput)
	}
	seen := make(map[string]bool, len(s.Measurements))
	for i, e := range s.Measurements {
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("%w: measurement %d has no name", common.ErrInvalidInput, i+1)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: duplicate measurement %q", common.ErrInvalidInput, e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}

// Reduce resolves every entry in order. The first failure stops the run and
// names the entry.
func (s *Sheet) Reduce() ([]Result, error) {
	results := make([]Result, 0, len(s.Measurements))
	for _, e := range s.Measurements {
		q, err := e.resolve(s.Divisor)
		if err != nil {
			return results, fmt.Errorf("measurement %q: %w", e.Name, err)
		}
		results = append(results, Result{Name: e.Name, Quantity: q})
	}
	return results, nil
}

func (e Entry) resolve(sheetDivisor *float64) (quantity.Quantity, error) {
	var c float64
	switch {
	case e.Divisor != nil:
		c = *e.Divisor
		if c <= 0 {
			return quantity.Quantity{}, fmt.Errorf("%w: divisor must be > 0", common.ErrInvalidInput)
		}
	case sheetDivisor != nil:
		c = *sheetDivisor
		if c <= 0 {
			return quantity.Quantity{}, fmt.Errorf("%w: sheet divisor must be > 0", common.ErrInvalidInput)
		}
	}

	summary := e.Samples != nil || e.Mean != nil || e.N != nil || e.Sigma != nil || e.Uncertainty != nil
	if e.Constant != nil {
		if e.Single != nil || summary || e.Tolerance != nil {
			return quantity.Quantity{}, fmt.Errorf("%w: constant cannot be combined with other fields", common.ErrInvalidInput)
		}
		return quantity.New(*e.Constant, 0)
	}

	if e.Tolerance == nil {
		return quantity.Quantity{}, fmt.Errorf("%w: tolerance required", common.ErrInvalidInput)
	}

	if e.Single != nil {
		if summary {
			return quantity.Quantity{}, fmt.Errorf("%w: single cannot be combined with summary fields", common.ErrInvalidInput)
		}
		if err := common.ValidateNumber(*e.Single, "single"); err != nil {
			return quantity.Quantity{}, err
		}
		return quantity.FromSingleReading(*e.Single, *e.Tolerance, c)
	}

	return quantity.FromSummary(quantity.Options{
		Mean:                e.Mean,
		Samples:             e.Samples,
		N:                   e.N,
		Sigma:               e.Sigma,
		Uncertainty:         e.Uncertainty,
		InstrumentTolerance: e.Tolerance,
		ConfidenceDivisor:   c,
	})
}
