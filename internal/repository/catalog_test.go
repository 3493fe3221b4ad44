package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicleagent/internal/model"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"id":"1","make":"Toyota","model":"Camry","year":2024,"price":28000,"type":"Sedan","features":["Hybrid Engine"]},
		{"id":"2","make":"Honda","model":"Accord","year":2024,"price":29500,"type":"Sedan"}
	]`)

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, 2, catalog.Len())

	v, ok := catalog.FindByID("1")
	require.True(t, ok)
	assert.Equal(t, "Camry", v.Model)
	assert.Equal(t, float64(28000), v.Price)

	_, ok = catalog.FindByID("99")
	assert.False(t, ok)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadCatalog_MalformedJSON(t *testing.T) {
	path := writeCatalogFile(t, `{not json`)
	_, err := LoadCatalog(path)
	assert.Error(t, err)
}

func TestLoadCatalog_IncompleteEntry(t *testing.T) {
	path := writeCatalogFile(t, `[{"id":"1","make":"Toyota"}]`)
	_, err := LoadCatalog(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id, make or model")
}

func TestNewCatalog_DuplicateID(t *testing.T) {
	_, err := NewCatalog([]model.Vehicle{
		{ID: "1", Make: "Toyota", Model: "Camry"},
		{ID: "1", Make: "Honda", Model: "Accord"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate catalog id "1"`)
}

func TestCatalog_Filter(t *testing.T) {
	catalog, err := NewCatalog([]model.Vehicle{
		{ID: "1", Make: "Toyota", Model: "Camry", Type: "Sedan"},
		{ID: "2", Make: "Honda", Model: "Accord", Type: "Sedan"},
		{ID: "3", Make: "Honda", Model: "CR-V", Type: "SUV"},
	})
	require.NoError(t, err)

	tests := []struct {
		name           string
		mk, mdl, vtype string
		wantIDs        []string
	}{
		{"no criteria matches all", "", "", "", []string{"1", "2", "3"}},
		{"make filter case-insensitive", "toyota", "", "", []string{"1"}},
		{"type filter", "", "", "suv", []string{"3"}},
		{"make and type", "honda", "", "Sedan", []string{"2"}},
		{"model filter", "", "cr-v", "", []string{"3"}},
		{"no matches yields empty non-nil", "Lada", "", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := catalog.Filter(tt.mk, tt.mdl, tt.vtype)
			require.NotNil(t, results)

			ids := make([]string, 0, len(results))
			for _, v := range results {
				ids = append(ids, v.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestEmptyCatalog(t *testing.T) {
	catalog := Empty()
	assert.Zero(t, catalog.Len())
	assert.Empty(t, catalog.All())

	_, ok := catalog.FindByID("1")
	assert.False(t, ok)
}
