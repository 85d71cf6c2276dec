package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	domainerr "gazette/internal/domain/errors"
)

// Config is the tool configuration loaded from site.yaml. It covers the
// directories and theme the build works with; the publication itself is
// described by the season manifest, not here.
type Config struct {
	Site  SiteConfig  `yaml:"site"`
	Build BuildConfig `yaml:"build"`
	Serve ServeConfig `yaml:"serve"`
}

type SiteConfig struct {
	Theme    string `yaml:"theme"`
	Language string `yaml:"language"`
}

type BuildConfig struct {
	SourceDir string `yaml:"source_dir"`
	PublicDir string `yaml:"public_dir"`
	ThemeDir  string `yaml:"theme_dir"`
	IndexPath string `yaml:"index_path"`
}

type ServeConfig struct {
	Addr string `yaml:"addr"`
}

func Default() Config {
	return Config{
		Site: SiteConfig{
			Theme:    "default",
			Language: "en",
		},
		Build: BuildConfig{
			SourceDir: "source",
			PublicDir: "public",
			ThemeDir:  "themes",
			IndexPath: ".gazette/index.db",
		},
		Serve: ServeConfig{
			Addr: ":8080",
		},
	}
}

func (c Config) Validate() error {
	var ve domainerr.ValidationError

	if strings.TrimSpace(c.Site.Theme) == "" {
		ve.Add("site.theme", "must not be empty")
	}

	if strings.TrimSpace(c.Build.SourceDir) == "" {
		ve.Add("build.source_dir", "must not be empty")
	}
	if strings.TrimSpace(c.Build.PublicDir) == "" {
		ve.Add("build.public_dir", "must not be empty")
	}
	if strings.TrimSpace(c.Build.ThemeDir) == "" {
		ve.Add("build.theme_dir", "must not be empty")
	}

	if addr := strings.TrimSpace(c.Serve.Addr); addr == "" {
		ve.Add("serve.addr", "must not be empty")
	} else if !strings.Contains(addr, ":") {
		ve.Add("serve.addr", "must be a host:port address")
	}

	if ve.HasAny() {
		return ve
	}
	return nil
}

func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	// Unmarshal over the defaults: fields present in the file win, the
	// rest keep their default values.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but treats a missing file as an empty one.
func LoadOrDefault(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := cfg.Validate(); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
