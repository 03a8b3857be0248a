package cmdutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Output formats for result files.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// OutputConfig describes where a command writes its results.
type OutputConfig struct {
	Path   string
	Format string
}

// SetupOutput resolves the output path against output.dir, infers the
// format from the extension when none was given and creates the parent
// directory. An empty path means stdout and is left untouched.
func SetupOutput(cfg *OutputConfig) error {
	if cfg.Path == "" {
		return nil
	}

	if !filepath.IsAbs(cfg.Path) {
		if baseDir := viper.GetString("output.dir"); baseDir != "" {
			cfg.Path = filepath.Join(baseDir, cfg.Path)
		}
	}
	cfg.Path = filepath.Clean(cfg.Path)

	if cfg.Format == "" {
		switch strings.ToLower(filepath.Ext(cfg.Path)) {
		case ".yaml", ".yml":
			cfg.Format = FormatYAML
		default:
			cfg.Format = FormatJSON
		}
	}
	if cfg.Format != FormatJSON && cfg.Format != FormatYAML {
		return fmt.Errorf("unsupported output format %q", cfg.Format)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}
