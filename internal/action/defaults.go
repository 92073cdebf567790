package action

import (
	"fmt"
	"os"

	yaml "go.yaml.in/yaml/v3"
)

// Defaults are repository-level fallbacks for the optional inputs, so a
// workflow does not have to repeat thread/display flags on every step.
type Defaults struct {
	ThreadID            int  `yaml:"thread_id"`
	DisablePreview      bool `yaml:"disable_web_page_preview"`
	DisableNotification bool `yaml:"disable_notification"`
}

// loadDefaults parses the YAML defaults file. An empty path means no file
// was configured and yields zero defaults with no error.
func loadDefaults(path string) (Defaults, error) {
	if path == "" {
		return Defaults{}, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Defaults{}, fmt.Errorf("read defaults file: %w", err)
	}
	var d Defaults
	if err := yaml.Unmarshal(b, &d); err != nil {
		return Defaults{}, fmt.Errorf("parse defaults file %s: %w", path, err)
	}
	return d, nil
}
