package worksheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/expdata/internal/providers/uncertainty/common"
)

const yamlSheet = `
measurements:
  - name: period
    samples: [9.8, 9.9, 10.0, 10.1, 10.2]
    tolerance: 0.1
  - name: length
    mean: 10.0
    n: 5
    sigma: 0.158113883
    tolerance: 0.1
  - name: mass
    mean: 0.5
    uncertainty: 0.002
    tolerance: 0.001
  - name: thermometer
    single: 3.2
    tolerance: 0.05
  - name: g
    constant: 9.81
`

const tomlSheet = `
divisor = 1.0

[[measurements]]
name = "period"
samples = [9.8, 9.9, 10.0, 10.1, 10.2]
tolerance = 0.1
divisor = 1.05

[[measurements]]
name = "thermometer"
single = 3.2
tolerance = 0.05
`

func TestParseYAML(t *testing.T) {
	sheet, err := Parse([]byte(yamlSheet), FormatYAML)
	require.NoError(t, err)
	require.Len(t, sheet.Measurements, 5)

	results, err := sheet.Reduce()
	require.NoError(t, err)
	require.Len(t, results, 5)

	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"period", "length", "mass", "thermometer", "g"}, names)

	assert.InDelta(t, 10.0, results[0].Quantity.Mean(), 1e-12)
	assert.InDelta(t, 0.2181, results[0].Quantity.Uncertainty(), 1e-4)
	assert.InDelta(t, 0.2181, results[1].Quantity.Uncertainty(), 1e-4)
	assert.InDelta(t, 0.002, results[2].Quantity.Uncertainty(), 1e-15)
	assert.InDelta(t, 0.05/1.05, results[3].Quantity.Uncertainty(), 1e-12)
	assert.True(t, results[4].Quantity.IsExact())
	assert.Equal(t, "mean: 9.81, uncertainty: 0, relativeUncertainty: 0", results[4].Quantity.String())
}

func TestParseTOML(t *testing.T) {
	sheet, err := Parse([]byte(tomlSheet), FormatTOML)
	require.NoError(t, err)

	results, err := sheet.Reduce()
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.InDelta(t, 0.2181, results[0].Quantity.Uncertainty(), 1e-4)
	// sheet-wide divisor of 1.0
	assert.InDelta(t, 0.05, results[1].Quantity.Uncertainty(), 1e-12)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"unknown yaml key", "measurements:\n  - name: x\n    sigm: 1\n", FormatYAML},
		{"unknown toml key", "[[measurements]]\nname = \"x\"\nsigm = 1.0\n", FormatTOML},
		{"empty sheet", "measurements: []\n", FormatYAML},
		{"missing name", "measurements:\n  - mean: 1.0\n    uncertainty: 0.1\n", FormatYAML},
		{"duplicate name", "measurements:\n  - name: a\n    constant: 1.0\n  - name: a\n    constant: 2.0\n", FormatYAML},
		{"malformed yaml", "measurements: [", FormatYAML},
		{"unknown format", "{}", Format("json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestReduceErrorsNameEntry(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"too many samples", "measurements:\n  - name: big\n    samples: [1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,20,21]\n    tolerance: 0.1\n", common.ErrTableRange},
		{"one sample", "measurements:\n  - name: big\n    samples: [1.0]\n    tolerance: 0.1\n", common.ErrInvalidInput},
		{"not enough fields", "measurements:\n  - name: big\n    mean: 1.0\n    tolerance: 0.1\n", common.ErrInvalidInput},
		{"samples without tolerance", "measurements:\n  - name: big\n    samples: [9.8, 9.9, 10.0, 10.1, 10.2]\n", common.ErrInvalidInput},
		{"summary without tolerance", "measurements:\n  - name: big\n    mean: 10.0\n    n: 5\n    sigma: 0.1\n", common.ErrInvalidInput},
		{"single without tolerance", "measurements:\n  - name: big\n    single: 3.2\n", common.ErrInvalidInput},
		{"constant with tolerance", "measurements:\n  - name: big\n    constant: 1.0\n    tolerance: 0.1\n", common.ErrInvalidInput},
		{"constant with extras", "measurements:\n  - name: big\n    constant: 1.0\n    mean: 2.0\n", common.ErrInvalidInput},
		{"single with extras", "measurements:\n  - name: big\n    single: 1.0\n    samples: [1.0, 2.0]\n    tolerance: 0.1\n", common.ErrInvalidInput},
		{"bad divisor", "measurements:\n  - name: big\n    single: 1.0\n    tolerance: 0.1\n    divisor: -1.0\n", common.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := Parse([]byte(tt.data), FormatYAML)
			require.NoError(t, err)
			_, err = sheet.Reduce()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), `"big"`)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "lab.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlSheet), 0o644))
	sheet, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Len(t, sheet.Measurements, 5)

	tomlPath := filepath.Join(dir, "lab.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(tomlSheet), 0o644))
	sheet, err = Load(tomlPath)
	require.NoError(t, err)
	assert.Len(t, sheet.Measurements, 2)

	_, err = Load(filepath.Join(dir, "lab.csv"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
