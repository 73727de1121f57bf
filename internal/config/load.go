package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Environment variables read by Load.
const (
	EnvConfig    = "TADA_CONFIG"
	EnvTheme     = "TADA_THEME"
	EnvIDPolicy  = "TADA_ID_POLICY"
	EnvStrict    = "TADA_STRICT_INPUT"
	EnvGroup     = "TADA_GROUP"
	EnvLogLevel  = "TADA_LOG_LEVEL"
	EnvInterface = "TADA_INTERFACE"
)

type flagValues struct {
	config   string
	theme    string
	idPolicy string
	strict   bool
	group    bool
	logLevel string
}

// registerFlags defines the root flags on fs. Call before fs.Parse.
func registerFlags(fs *flag.FlagSet) *flagValues {
	fv := &flagValues{}
	fs.StringVar(&fv.config, "config", "", "config file (default ./"+FileName+" or user config dir)")
	fs.StringVar(&fv.theme, "theme", "", "color theme: classic, neon, mono")
	fs.StringVar(&fv.idPolicy, "id-policy", "", "id allocation: monotonic or count")
	fs.BoolVar(&fv.strict, "strict", false, "abort on malformed input instead of re-prompting")
	fs.BoolVar(&fv.group, "group", false, "group list output by pending/done")
	fs.StringVar(&fv.logLevel, "log-level", "", "log level: debug, info, warn, error")
	return fv
}

// Load parses args into fs and resolves the configuration:
// defaults, then the config file, then the environment, then flags.
// Positional arguments remain available through fs.Args().
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	fv := registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := Default()

	path, explicit, err := findConfigFile(fv.config)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := loadConfigFile(cfg, path, explicit); err != nil {
			return nil, err
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}
	applyFlags(cfg, fs, fv)

	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	cfg.Interface = strings.ToLower(strings.TrimSpace(cfg.Interface))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile returns the file to read and whether it was asked for
// explicitly. An explicit file must exist; searched locations may not.
func findConfigFile(flagPath string) (string, bool, error) {
	if flagPath != "" {
		return flagPath, true, nil
	}
	if v := os.Getenv(EnvConfig); v != "" {
		return v, true, nil
	}

	candidates := []string{FileName}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "tada", FileName))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, false, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %s: %w", c, err)
		}
	}
	return "", false, nil
}

func loadConfigFile(cfg *Config, path string, explicit bool) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("loading config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	return nil
}

func loadFromEnv(cfg *Config) error {
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv(EnvIDPolicy); v != "" {
		cfg.IDPolicy = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvInterface); v != "" {
		cfg.Interface = v
	}
	for name, dst := range map[string]*bool{EnvStrict: &cfg.StrictInput, EnvGroup: &cfg.Group} {
		v := os.Getenv(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = b
	}
	return nil
}

// applyFlags copies only the flags that were set on the command line.
func applyFlags(cfg *Config, fs *flag.FlagSet, fv *flagValues) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "theme":
			cfg.Theme = fv.theme
		case "id-policy":
			cfg.IDPolicy = fv.idPolicy
		case "strict":
			cfg.StrictInput = fv.strict
		case "group":
			cfg.Group = fv.group
		case "log-level":
			cfg.LogLevel = fv.logLevel
		}
	})
}
