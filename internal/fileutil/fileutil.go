package fileutil

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SanitizeFilename cleans a filename by replacing problematic characters
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, ":", " -")
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	return name
}

// FileExists checks if a file exists at the given path
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// WriteFileWithOverwrite writes data to a file, respecting the overwrite flag
// Returns true if the file was written, false if it was skipped
func WriteFileWithOverwrite(filePath string, data []byte, perm os.FileMode, overwrite bool) (bool, error) {
	if FileExists(filePath) && !overwrite {
		return false, nil
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, err
	}

	if err := os.WriteFile(filePath, data, perm); err != nil {
		return false, err
	}

	return true, nil
}

// WriteJSONFile writes data as indented JSON, respecting the overwrite flag.
// Returns true if the file was written, false if it was skipped
func WriteJSONFile(data any, filePath string, overwrite bool) (bool, error) {
	if FileExists(filePath) && !overwrite {
		slog.Info("JSON file already exists, skipping", "filename", filePath, "overwrite", overwrite)
		return false, nil
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return false, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	slog.Info("Writing JSON file", "filename", filePath, "overwrite", overwrite)
	written, err := WriteFileWithOverwrite(filePath, append(jsonData, '\n'), 0644, true)
	if err != nil {
		return false, fmt.Errorf("failed to write JSON file: %w", err)
	}
	return written, nil
}

// WriteYAMLFile writes data as YAML, respecting the overwrite flag. Keys and
// their order follow the JSON encoding of data.
func WriteYAMLFile(data any, filePath string, overwrite bool) (bool, error) {
	if FileExists(filePath) && !overwrite {
		slog.Info("YAML file already exists, skipping", "filename", filePath, "overwrite", overwrite)
		return false, nil
	}

	yamlData, err := MarshalYAML(data)
	if err != nil {
		return false, err
	}

	slog.Info("Writing YAML file", "filename", filePath, "overwrite", overwrite)
	written, err := WriteFileWithOverwrite(filePath, yamlData, 0644, true)
	if err != nil {
		return false, fmt.Errorf("failed to write YAML file: %w", err)
	}
	return written, nil
}

// MarshalYAML encodes data as block-style YAML using its JSON field names.
func MarshalYAML(data any) ([]byte, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	// JSON is valid YAML; going through a node keeps the key order.
	var node yaml.Node
	if err := yaml.Unmarshal(jsonData, &node); err != nil {
		return nil, fmt.Errorf("failed to parse JSON as YAML: %w", err)
	}
	clearStyle(&node)

	out, err := yaml.Marshal(&node)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return out, nil
}

func clearStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		clearStyle(child)
	}
}
