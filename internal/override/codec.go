package override

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/gzip"
	"github.com/pelletier/go-toml/v2"
)

// Format identifies an on-disk override-log encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Log is the persisted form of an override sequence. Records round-trip
// through ordinary structured serialization; there is no custom wire format.
type Log struct {
	Overrides []ElementOverride `json:"overrides" yaml:"overrides" toml:"overrides"`
}

// DetectFormat derives the encoding and gzip flag from a file path.
// A trailing .gz marks transparent compression: log.json.gz, log.yaml.gz.
func DetectFormat(path string) (Format, bool, error) {
	gzipped := false
	if strings.EqualFold(filepath.Ext(path), ".gz") {
		gzipped = true
		path = strings.TrimSuffix(path, filepath.Ext(path))
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, gzipped, nil
	case ".yaml", ".yml":
		return FormatYAML, gzipped, nil
	case ".toml":
		return FormatTOML, gzipped, nil
	default:
		return "", false, fmt.Errorf("unsupported override log extension: %s", filepath.Ext(path))
	}
}

// EncodeLog serializes the log in the requested format.
func EncodeLog(log *Log, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return sonic.MarshalIndent(log, "", "  ")
	case FormatYAML:
		return yaml.Marshal(log)
	case FormatTOML:
		return toml.Marshal(log)
	default:
		return nil, fmt.Errorf("unsupported override log format: %s", format)
	}
}

// DecodeLog deserializes a log from the given format.
func DecodeLog(data []byte, format Format) (*Log, error) {
	var log Log
	var err error
	switch format {
	case FormatJSON:
		err = sonic.Unmarshal(data, &log)
	case FormatYAML:
		err = yaml.Unmarshal(data, &log)
	case FormatTOML:
		err = toml.Unmarshal(data, &log)
	default:
		return nil, fmt.Errorf("unsupported override log format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode override log: %w", err)
	}
	return &log, nil
}

// WriteLogFile persists the log, picking format and compression from the
// file extension.
func WriteLogFile(path string, log *Log) error {
	format, gzipped, err := DetectFormat(path)
	if err != nil {
		return err
	}
	data, err := EncodeLog(log, format)
	if err != nil {
		return err
	}
	if gzipped {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return fmt.Errorf("failed to compress override log: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("failed to compress override log: %w", err)
		}
		data = buf.Bytes()
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadLogFile loads a log, picking format and compression from the file
// extension.
func ReadLogFile(path string) (*Log, error) {
	format, gzipped, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if gzipped {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decompress override log: %w", err)
		}
		defer zr.Close()
		if data, err = io.ReadAll(zr); err != nil {
			return nil, fmt.Errorf("failed to decompress override log: %w", err)
		}
	}
	return DecodeLog(data, format)
}
