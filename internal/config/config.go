// Package config loads the nocrux configuration file and builds the
// per-invocation daemon registry. The configuration is a declarative
// YAML document; there is no executable configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/nocrux/nocrux/internal/daemon"
)

// File mirrors the YAML configuration document.
type File struct {
	RootDir      string        `mapstructure:"root_dir"`
	KillTimeout  time.Duration `mapstructure:"kill_timeout"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	Daemons      []Daemon      `mapstructure:"daemons"`
}

// Daemon is one entry of the daemons list.
type Daemon struct {
	Name    string   `mapstructure:"name"`
	Prog    string   `mapstructure:"prog"`
	Args    []string `mapstructure:"args"`
	Cwd     string   `mapstructure:"cwd"`
	User    string   `mapstructure:"user"`
	Group   string   `mapstructure:"group"`
	Stdin   string   `mapstructure:"stdin"`
	Stdout  string   `mapstructure:"stdout"`
	Stderr  string   `mapstructure:"stderr"`
	PIDFile string   `mapstructure:"pidfile"`
	EnvFile string   `mapstructure:"env_file"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}

// Load reads configuration from the given path (or the default
// location) and returns the registry for this invocation. A missing
// file is not an error and yields an empty registry with defaults.
func Load(cfgFile string) (*daemon.Registry, error) {
	v := viper.New()

	v.SetDefault("root_dir", DefaultRootDir)
	v.SetDefault("kill_timeout", daemon.DefaultKillTimeout)
	v.SetDefault("poll_interval", daemon.DefaultPollInterval)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.SetConfigFile(DefaultConfigFile())
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	reg := daemon.NewRegistry(expandPath(f.RootDir), f.KillTimeout, f.PollInterval)
	for _, d := range f.Daemons {
		spec := &daemon.Spec{
			Name:    d.Name,
			Prog:    expandPath(d.Prog),
			Args:    d.Args,
			Cwd:     d.Cwd,
			User:    d.User,
			Group:   d.Group,
			Stdin:   expandIfSet(d.Stdin),
			Stdout:  expandIfSet(d.Stdout),
			Stderr:  expandIfSet(d.Stderr),
			PIDFile: expandIfSet(d.PIDFile),
			EnvFile: expandIfSet(d.EnvFile),
		}
		if err := reg.Register(spec); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return reg, nil
}

func expandIfSet(path string) string {
	if path == "" {
		return ""
	}
	return expandPath(path)
}
