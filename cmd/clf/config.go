package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/clf"
	"github.com/yacobolo/clf/internal/registry"
	"github.com/yacobolo/clf/internal/stylesheet"
)

const defaultConfigPath = ".clf.yaml"

// keyDelim separates config key paths. Variant options like "1.5" or
// "sm" must survive as single keys, so it is not ".".
const keyDelim = "::"

var k = koanf.New(keyDelim)

// loadConfig loads configuration with precedence: flags > env > .env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence, only flags that were explicitly set)
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, keyDelim, k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return flagKey(f.Name), posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	configureLogger()
	logger.Debug("configuration loaded", "config", configPath, "merger", mergerName())
	return nil
}

// loadConfigFromPath loads configuration from a file, a .env file in the
// working directory and environment variables.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), parserFor(configPath)); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. .env only fills variables that are not already set
	if err := loadDotEnv(".env"); err != nil {
		return err
	}

	// 3. Environment variables (CLF_* prefix)
	if err := k.Load(env.Provider("CLF_", keyDelim, envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to its config key:
//
//	CLF_MERGER              -> merger
//	CLF_CHECK_STRICT        -> check::strict
//	CLF_CHECK_OUTPUT_FORMAT -> check::output-format
func envKey(s string) string {
	parts := strings.SplitN(strings.ToLower(strings.TrimPrefix(s, "CLF_")), "_", 2)
	if len(parts) == 1 {
		return parts[0]
	}
	return parts[0] + keyDelim + strings.ReplaceAll(parts[1], "_", "-")
}

// flagKeys maps command flags to the config keys they override.
var flagKeys = map[string]string{
	"strict":            "check::strict",
	"output-format":     "check::output-format",
	"print-lines":       "check::print-lines",
	"print-linter-name": "check::print-linter-name",
	"format":            "resolve::format",
}

func flagKey(name string) string {
	if key, ok := flagKeys[name]; ok {
		return key
	}
	return name
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// parserFor picks the koanf parser for a config file by extension.
// YAML is the default; it also reads JSON.
func parserFor(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return tomlParser{}
	}
	return yaml.Parser()
}

// tomlParser implements koanf.Parser with go-toml.
type tomlParser struct{}

func (tomlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := toml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (tomlParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return toml.Marshal(o)
}

// parseList splits comma-separated values into a slice
func parseList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func configPath() string {
	return getString("config", defaultConfigPath)
}

func mergerName() string {
	return getString("merger", "tailwind")
}

// stylesheetPatterns accepts a list or, from CLF_STYLESHEETS, a
// comma-separated string.
func stylesheetPatterns() []string {
	if v, ok := k.Get("stylesheets").(string); ok {
		return parseList(v)
	}
	return k.Strings("stylesheets")
}

// loadRegistry decodes the components section of the configuration.
func loadRegistry() (registry.Registry, error) {
	reg, err := registry.Load(k, "components")
	if err != nil {
		return nil, err
	}
	logger.Debug("components loaded", "count", len(reg))
	return reg, nil
}

// loadSheet loads the configured stylesheets. It returns nil when none
// are configured.
func loadSheet() (*stylesheet.Sheet, error) {
	patterns := stylesheetPatterns()
	if len(patterns) == 0 {
		return nil, nil
	}

	sheet, stats, err := stylesheet.Load(patterns)
	if err != nil {
		return nil, fmt.Errorf("loading stylesheets: %w", err)
	}
	logger.Debug("stylesheets loaded",
		"files", stats.FilesScanned,
		"skipped", stats.FilesSkipped,
		"classes", sheet.Len())
	return sheet, nil
}

// buildMerger returns the configured merger. sheet is reused by the
// stylesheet merger and loaded if nil.
func buildMerger(sheet *stylesheet.Sheet) (clf.Merger, error) {
	switch name := mergerName(); name {
	case "tailwind":
		return &clf.TailwindMerger{}, nil
	case "dedup":
		return clf.DedupMerger{}, nil
	case "stylesheet":
		if sheet == nil {
			var err error
			if sheet, err = loadSheet(); err != nil {
				return nil, err
			}
		}
		if sheet == nil {
			return nil, fmt.Errorf("merger %q requires --stylesheets", name)
		}
		return stylesheet.NewMerger(sheet), nil
	default:
		return nil, fmt.Errorf("unknown merger %q (expected tailwind, stylesheet or dedup)", name)
	}
}

// getString returns the value at key, or defaultVal when it is unset or empty.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBool returns the value at key, or defaultVal when it is unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}
