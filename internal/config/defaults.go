package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultRootDir is the directory default daemon paths are derived
// from when the configuration does not set root_dir.
const DefaultRootDir = "~/.nocrux"

// DefaultConfigFile returns the configuration location used when
// --config is not given, resolved under the XDG config home.
func DefaultConfigFile() string {
	return filepath.Join(xdg.ConfigHome, "nocrux", "config.yaml")
}
