package patchset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

// readText reads a UTF-8 file, dropping a leading byte-order mark.
func readText(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return io.ReadAll(transform.NewReader(f, dec))
}

// decodeFile decodes a JSON or YAML document at path into v. The format is
// chosen by extension; anything that is not .yaml or .yml is JSON.
func decodeFile(path string, v any) error {
	data, err := readText(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return nil
}
