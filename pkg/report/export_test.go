package report

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/kleascm/binspect/pkg/analysis"
	"github.com/kleascm/binspect/pkg/charset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() *Report {
	r := NewReport(ModeAll)
	r.Sections = []string{"info", "stats", "encoding"}
	data := []byte{0x41, 0x41, 0x00, 0xFF}
	r.File = analysis.Describe("blob.bin", data)
	r.File.AddDigests(data)
	r.Hex = "414100FF"
	r.Frequencies = []ByteCount{{"0x41", 2}, {"0x00", 1}, {"0xFF", 1}}
	r.Encoding = &charset.Guess{Label: "ISO-8859-1", Confidence: 20}
	return r
}

func TestExportOptionsValidate(t *testing.T) {
	assert.NoError(t, ExportOptions{Format: FormatJSON}.Validate())
	assert.NoError(t, ExportOptions{Format: FormatYAML}.Validate())
	assert.Error(t, ExportOptions{Format: "xml"}.Validate())
}

func TestWriteJSON(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	r := sampleReport()

	path, err := Write(r, ExportOptions{Dir: dir, Format: FormatJSON})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".json"))
	assert.Contains(t, filepath.Base(path), r.RunID[:8])

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r.RunID, decoded.RunID)
	assert.Equal(t, r.File, decoded.File)
	assert.Equal(t, r.Frequencies, decoded.Frequencies)
	assert.Equal(t, *r.Encoding, *decoded.Encoding)
}

func TestWriteYAMLCompressed(t *testing.T) {
	dir := t.TempDir()
	r := sampleReport()

	path, err := Write(r, ExportOptions{Dir: dir, Format: FormatYAML, Compress: true})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".yaml.gz"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(gz)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "all", decoded["mode"])
	assert.Equal(t, "414100FF", decoded["hex"])
	file := decoded["file"].(map[string]interface{})
	assert.Equal(t, r.File.BLAKE3, file["blake3"])
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	_, err := Write(sampleReport(), ExportOptions{Dir: t.TempDir(), Format: "toml"})
	assert.Error(t, err)
}
