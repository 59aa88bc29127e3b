package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/home-symlink/pkg/errors"
	"github.com/arthur-debert/home-symlink/pkg/logging"
	"github.com/arthur-debert/home-symlink/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the prefix of every configuration variable
const envPrefix = "HOME_SYMLINK_"

// envKeys maps environment variable names, without the prefix, to
// configuration keys. Variables not listed here are not configuration
// (HOME_SYMLINK_CONFIG_DIR for instance) and are ignored.
var envKeys = map[string]string{
	"DIR":                 "root",
	"DECLARATION_FILE":    "declaration_file",
	"IGNORE_MARKER":       "ignore_marker",
	"PACKS_IGNORE":        "packs.ignore",
	"LINK_CREATE_PARENTS": "link.create_parents",
	"OUTPUT_FORMAT":       "output.format",
}

// Load builds the effective configuration. explicitRoot, usually the
// --dir flag, takes precedence over every configured root. When no root
// is known at all the configuration is still returned, with Root empty;
// commands needing a root report that themselves.
func Load(explicitRoot string) (*Config, error) {
	logger := logging.GetLogger("config")

	base, err := load("")
	if err != nil {
		return nil, err
	}

	root, err := paths.ResolveRoot(explicitRoot, base.String("root"))
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrRootUnset) {
			logger.Debug().Msg("No packages root configured")
			return unmarshal(base)
		}
		return nil, err
	}

	k, err := load(root)
	if err != nil {
		return nil, err
	}

	// The resolved root replaces whatever the layers said
	resolved := map[string]interface{}{"root": root}
	if err := k.Load(confmap.Provider(resolved, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to set resolved root")
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", cfg.Root).
		Str("declarationFile", cfg.DeclarationFile).
		Strs("ignore", cfg.Packs.Ignore).
		Bool("createParents", cfg.Link.CreateParents).
		Msg("Configuration loaded")

	return cfg, nil
}

// load stacks the configuration layers. The root file layer is skipped
// when root is empty.
func load(root string) (*koanf.Koanf, error) {
	k, err := defaultsKoanf()
	if err != nil {
		return nil, err
	}

	if err := loadFile(k, paths.UserConfigPath()); err != nil {
		return nil, err
	}

	if root != "" {
		if err := loadFile(k, paths.RootConfigPath(root)); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.ProviderWithValue(envPrefix, ".", envValue), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	return k, nil
}

func defaultsKoanf() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}
	return k, nil
}

// loadFile merges the TOML file at path into k. A missing file is not an
// error.
func loadFile(k *koanf.Koanf, path string) error {
	logger := logging.GetLogger("config")

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			logger.Trace().Str("path", path).Msg("No configuration file")
			return nil
		}
		return errors.Wrap(err, errors.ErrConfigLoad, "cannot access configuration file").
			WithDetail("path", path)
	}

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}

	logger.Debug().Str("path", path).Msg("Loaded configuration file")
	return nil
}

// envKey turns HOME_SYMLINK_LINK_CREATE_PARENTS into link.create_parents
func envKey(name string) string {
	return envKeys[strings.TrimPrefix(name, envPrefix)]
}

// envValue skips unknown and empty variables. Returning "" makes koanf
// skip the variable.
func envValue(name, value string) (string, interface{}) {
	if value == "" {
		return "", nil
	}
	return envKey(name), value
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
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
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}
