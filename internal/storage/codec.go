package storage

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Codec converts an ordered list of records to and from bytes.
type Codec interface {
	Marshal(records []Record) ([]byte, error)
	Unmarshal(data []byte) ([]Record, error)
}

// JSONCodec writes records as an indented JSON array.
type JSONCodec struct{}

func (JSONCodec) Marshal(records []Record) ([]byte, error) {
	return json.MarshalIndent(records, "", "    ")
}

func (JSONCodec) Unmarshal(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: expected a JSON array, got null", ErrCorruptSnapshot)
	}
	return records, nil
}

// YAMLCodec writes records as a YAML sequence.
type YAMLCodec struct{}

func (YAMLCodec) Marshal(records []Record) ([]byte, error) {
	return yaml.Marshal(records)
}

func (YAMLCodec) Unmarshal(data []byte) ([]Record, error) {
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return records, nil
}

// CodecFor picks the codec matching the file extension. JSON is the default.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAMLCodec{}
	default:
		return JSONCodec{}
	}
}
