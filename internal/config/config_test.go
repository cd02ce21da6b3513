package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mpreview/internal/extract"
)

func TestDefaultValidatesWithStorageSet(t *testing.T) {
	cfg := Default()
	cfg.Storage.Bucket = "statements"

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "underscore.xlsx", cfg.Storage.Object)
	assert.Equal(t, []string{"Batch 1", "Batch 2"}, cfg.BatchNames())
	assert.Equal(t, "Batch 1", cfg.DefaultBatch())
}

func TestDefaultRequiresBucket(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.Validate())
}

func TestLoadYAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
storage:
  bucket: statements
  object: reviews.xlsx
batches:
  "Batch 3":
    sheet_name: next
    doc_path_prefix: 31_batch
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("MPREVIEW_CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "statements", cfg.Storage.Bucket)
	assert.Equal(t, "reviews.xlsx", cfg.Storage.Object)
	require.Contains(t, cfg.Batches, "Batch 3")
	assert.Equal(t, "next", cfg.Batches["Batch 3"].SheetName)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
storage:
  bucket: from-file
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("MPREVIEW_CONFIG_FILE", path)
	t.Setenv("MPREVIEW_SERVER_PORT", "7070")
	t.Setenv("MPREVIEW_STORAGE_BUCKET", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Storage.Bucket)
}

func TestSchemaOverrides(t *testing.T) {
	cfg := Default()
	cfg.Storage.Bucket = "statements"
	cfg.Schemas.MP = map[string]int{"case_id": 5}

	s, err := cfg.MPSchema()
	require.NoError(t, err)
	assert.Equal(t, 5, s[extract.FieldCaseID])
	assert.Equal(t, extract.DefaultMPSchema()[extract.FieldDocID], s[extract.FieldDocID])
}

func TestSchemaOverrideValidationFailsAtLoad(t *testing.T) {
	cfg := Default()
	cfg.Storage.Bucket = "statements"
	cfg.Schemas.KYM = map[string]int{"monthly_deposit": -2}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kym schema")
}
