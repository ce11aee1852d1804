package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/piwi3910/LoadPack/internal/importer"
	"github.com/piwi3910/LoadPack/internal/model"
)

// loadListFile is the document layout of YAML, TOML and JSON load lists:
//
//	loads:
//	  - prefix: A
//	    width: 30
//	    height: 20
//	    count: 20
type loadListFile struct {
	Loads model.LoadList `json:"loads" yaml:"loads" toml:"loads"`
}

// LoadListExtensions lists the file extensions LoadLoadList understands.
var LoadListExtensions = []string{".yaml", ".yml", ".toml", ".json", ".csv", ".xlsx", ".dxf"}

// LoadLoadList reads a load list, picking the format from the file
// extension. Tabular and drawing formats go through the importer; its
// warnings are returned alongside the list. Any row error or invalid line
// fails the whole load with an error wrapping model.ErrInvalidInput.
func LoadLoadList(path string) (model.LoadList, []string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var result importer.ImportResult
	switch ext {
	case ".csv":
		result = importer.ImportCSV(path)
	case ".xlsx":
		result = importer.ImportExcel(path)
	case ".dxf":
		result = importer.ImportDXF(path)
	case ".yaml", ".yml", ".toml", ".json":
		loads, err := decodeLoadList(path, ext)
		if err != nil {
			return nil, nil, err
		}
		return loads, nil, nil
	default:
		return nil, nil, fmt.Errorf("%w: unsupported load list format %q", model.ErrInvalidInput, ext)
	}

	if err := result.Err(); err != nil {
		return nil, result.Warnings, fmt.Errorf("failed to import %s: %w", path, err)
	}
	return result.Loads, result.Warnings, nil
}

func decodeLoadList(path, ext string) (model.LoadList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read load list: %w", err)
	}

	var doc loadListFile
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	case ".json":
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", model.ErrInvalidInput, path, err)
	}

	for _, ls := range doc.Loads {
		if err := ls.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return doc.Loads, nil
}

// SaveLoadList writes a load list as YAML, TOML or JSON depending on the
// file extension.
func SaveLoadList(path string, loads model.LoadList) error {
	doc := loadListFile{Loads: loads}

	var data []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(doc)
	case ".toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(doc)
		data = buf.Bytes()
	case ".json":
		data, err = json.MarshalIndent(doc, "", "  ")
	default:
		return fmt.Errorf("%w: cannot write load list as %q", model.ErrInvalidInput, ext)
	}
	if err != nil {
		return fmt.Errorf("failed to encode load list: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
