package script

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a command file, choosing the parser by extension:
// .yaml/.yml → LoadYAML, .hcl → LoadHCL, anything else → LoadLines.
func Load(path string) ([]Command, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	name := filepath.Base(path)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(name, bytes.NewReader(src))
	case ".hcl":
		return LoadHCL(name, src)
	default:
		return LoadLines(name, bytes.NewReader(src))
	}
}
