package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/reskin/pkg/errors"
	"github.com/arthur-debert/reskin/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read into the config
const EnvPrefix = "RESKIN_"

// envSeparator splits a section from a key in environment variable names
const envSeparator = "__"

// Options controls which sources Load reads
type Options struct {
	// File is the user config file. A missing file is not an error.
	File string
	// Env enables RESKIN_ environment variables.
	Env bool
}

// Load builds the configuration from the embedded defaults, the user's
// config file and the environment
func Load(opts Options) (*Config, error) {
	return load(opts)
}

func load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config if it exists
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err == nil {
			if err := k.Load(file.Provider(opts.File), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", opts.File).
					WithDetail("path", opts.File)
			}
			logger.Debug().Str("path", opts.File).Msg("loaded user config")
		}
	}

	// 3. Environment
	if opts.Env {
		if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	normalize(&cfg)
	return &cfg, nil
}

// envKey maps RESKIN_SECTION__KEY to section.key. Variables without a
// section separator (RESKIN_THEMES_DIR and friends belong to pkg/paths)
// are skipped.
func envKey(s string) string {
	key := strings.TrimPrefix(s, EnvPrefix)
	if !strings.Contains(key, envSeparator) {
		return ""
	}
	return strings.ToLower(strings.ReplaceAll(key, envSeparator, "."))
}

func normalize(cfg *Config) {
	exts := cfg.Install.FontExtensions[:0]
	for _, ext := range cfg.Install.FontExtensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			exts = append(exts, ext)
		}
	}
	cfg.Install.FontExtensions = exts

	if cfg.Recent.MaxEntries < 1 {
		cfg.Recent.MaxEntries = 1
	}
	if cfg.Catalog.Bucket == "" {
		cfg.Catalog.Bucket = "themes"
	}
	cfg.Catalog.Endpoint = strings.TrimRight(cfg.Catalog.Endpoint, "/")
}
