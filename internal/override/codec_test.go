package override

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLog() *Log {
	return &Log{
		Overrides: []ElementOverride{
			{
				Selector:  "#title",
				Text:      strPtr("Hello"),
				Styles:    map[string]string{"color": "red"},
				Timestamp: 100,
				Original:  &Snapshot{Text: strPtr("Old title")},
			},
			{
				Selector:    ".card",
				HTML:        strPtr("<b>new</b>"),
				Attributes:  map[string]string{"data-state": "done"},
				Position:    &Position{X: 10, Y: 20},
				Size:        &Size{Width: 300, Height: 150},
				Timestamp:   200,
				AIGenerated: true,
			},
		},
	}
}

func TestEncodeDecodeFormats(t *testing.T) {
	for _, format := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			log := sampleLog()
			data, err := EncodeLog(log, format)
			require.NoError(t, err)

			decoded, err := DecodeLog(data, format)
			require.NoError(t, err)
			require.Len(t, decoded.Overrides, 2)

			first, second := decoded.Overrides[0], decoded.Overrides[1]
			assert.Equal(t, "#title", first.Selector)
			require.NotNil(t, first.Text)
			assert.Equal(t, "Hello", *first.Text)
			require.NotNil(t, first.Original)
			assert.Equal(t, "Old title", *first.Original.Text)
			assert.Nil(t, first.HTML)

			require.NotNil(t, second.HTML)
			assert.Equal(t, "<b>new</b>", *second.HTML)
			assert.True(t, second.AIGenerated)
			require.NotNil(t, second.Position)
			assert.Equal(t, 10.0, second.Position.X)
			require.NotNil(t, second.Size)
			assert.Equal(t, 150.0, second.Size.Height)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		path    string
		format  Format
		gzipped bool
	}{
		{"log.json", FormatJSON, false},
		{"log.json.gz", FormatJSON, true},
		{"log.yaml", FormatYAML, false},
		{"log.yml.gz", FormatYAML, true},
		{"log.toml", FormatTOML, false},
	}
	for _, c := range cases {
		format, gzipped, err := DetectFormat(c.path)
		require.NoError(t, err, c.path)
		assert.Equal(t, c.format, format, c.path)
		assert.Equal(t, c.gzipped, gzipped, c.path)
	}

	_, _, err := DetectFormat("log.bin")
	assert.Error(t, err)
}

func TestLogFileRoundTrip(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"log.json", "log.yaml", "log.toml", "log.json.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, WriteLogFile(path, sampleLog()))

			loaded, err := ReadLogFile(path)
			require.NoError(t, err)
			require.Len(t, loaded.Overrides, 2)
			assert.Equal(t, int64(200), loaded.Overrides[1].Timestamp)
			assert.Equal(t, "done", loaded.Overrides[1].Attributes["data-state"])
		})
	}
}
