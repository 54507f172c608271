// FILE: config.go
package logix

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/lixenwraith/config"
	"github.com/pkg/errors"
)

// Config holds the validated configuration the dispatch core consumes.
// Parsing of external sources (environment, files, flags) happens in the
// loaders below; the core only ever sees a normalized value.
type Config struct {
	// Modes selects the active sinks: a subset of console/file/network,
	// or exactly {none} for a fully silent pipeline.
	Modes []string `toml:"modes"`

	// Base level applied to the aggregate filter and every sink.
	Level string `toml:"level"`

	// Pattern template used by each sink's formatter.
	Pattern string `toml:"pattern"`

	// File sink settings
	FilePath    string `toml:"file_path"`
	FileSizeMB  int64  `toml:"file_size_mb"`  // Rotation threshold per file
	MaxLogFiles int64  `toml:"max_log_files"` // 1 active + N-1 archives

	// Network sink settings
	NetworkHost string `toml:"network_host"`
	NetworkPort int64  `toml:"network_port"`
	UDPFormat   string `toml:"udp_format"` // "json" or "plain"

	// Queue capacity, fixed at Initialize
	BufferSize int64 `toml:"buffer_size"`

	// Console sink target: "stdout" or "stderr"
	ConsoleTarget string `toml:"console_target"`

	// Write internal diagnostics to stderr
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"`
}

// defaultConfig is the single source for all configurable default values.
var defaultConfig = Config{
	Modes:                  []string{ModeConsole},
	Level:                  defaultLevel,
	Pattern:                defaultPattern,
	FileSizeMB:             defaultFileSizeMB,
	MaxLogFiles:            defaultMaxLogFiles,
	UDPFormat:              defaultUDPFormat,
	BufferSize:             defaultBufferSize,
	ConsoleTarget:          defaultConsole,
	InternalErrorsToStderr: true,
}

// DefaultConfig returns a copy of the default configuration.
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	copiedConfig.Modes = append([]string(nil), defaultConfig.Modes...)
	return &copiedConfig
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	copiedConfig := *c
	copiedConfig.Modes = append([]string(nil), c.Modes...)
	return &copiedConfig
}

// normalize replaces every malformed or missing value with its default and
// returns one ConfigValueError per substitution. It never fails: malformed
// configuration degrades, it does not abort.
func (c *Config) normalize() []error {
	var warnings []error

	c.Modes, warnings = normalizeModes(c.Modes, warnings)

	if strings.TrimSpace(c.Level) == "" {
		c.Level = defaultLevel
	} else if _, err := ParseLevel(c.Level); err != nil {
		warnings = append(warnings, &ConfigValueError{Key: "level", Value: c.Level, Default: defaultLevel})
		c.Level = defaultLevel
	}

	if strings.TrimSpace(c.Pattern) == "" {
		c.Pattern = defaultPattern
	}

	if c.FileSizeMB < 0 {
		warnings = append(warnings, &ConfigValueError{Key: "file_size_mb", Value: strconv.FormatInt(c.FileSizeMB, 10), Default: defaultFileSizeMB})
	}
	if c.FileSizeMB <= 0 {
		c.FileSizeMB = defaultFileSizeMB
	}

	if c.MaxLogFiles < 0 {
		warnings = append(warnings, &ConfigValueError{Key: "max_log_files", Value: strconv.FormatInt(c.MaxLogFiles, 10), Default: defaultMaxLogFiles})
	}
	if c.MaxLogFiles <= 0 {
		c.MaxLogFiles = defaultMaxLogFiles
	}

	if c.NetworkPort < 0 || c.NetworkPort > 65535 {
		warnings = append(warnings, &ConfigValueError{Key: "network_port", Value: strconv.FormatInt(c.NetworkPort, 10), Default: 0})
		c.NetworkPort = 0
	}

	switch strings.ToLower(strings.TrimSpace(c.UDPFormat)) {
	case "":
		c.UDPFormat = defaultUDPFormat
	case UDPFormatJSON, UDPFormatPlain:
		c.UDPFormat = strings.ToLower(strings.TrimSpace(c.UDPFormat))
	default:
		warnings = append(warnings, &ConfigValueError{Key: "udp_format", Value: c.UDPFormat, Default: defaultUDPFormat})
		c.UDPFormat = defaultUDPFormat
	}

	if c.BufferSize < 0 {
		warnings = append(warnings, &ConfigValueError{Key: "buffer_size", Value: strconv.FormatInt(c.BufferSize, 10), Default: defaultBufferSize})
	}
	if c.BufferSize <= 0 {
		c.BufferSize = defaultBufferSize
	}

	switch strings.ToLower(strings.TrimSpace(c.ConsoleTarget)) {
	case "":
		c.ConsoleTarget = defaultConsole
	case "stdout", "stderr":
		c.ConsoleTarget = strings.ToLower(strings.TrimSpace(c.ConsoleTarget))
	default:
		warnings = append(warnings, &ConfigValueError{Key: "console_target", Value: c.ConsoleTarget, Default: defaultConsole})
		c.ConsoleTarget = defaultConsole
	}

	return warnings
}

// normalizeModes lowercases, dedupes, and validates the mode list. An empty
// list means {none}; "none" combined with other modes is dropped.
func normalizeModes(modes []string, warnings []error) ([]string, []error) {
	seen := make(map[string]bool, len(modes))
	out := make([]string, 0, len(modes))
	for _, m := range modes {
		m = strings.ToLower(strings.TrimSpace(m))
		if m == "" || seen[m] {
			continue
		}
		switch m {
		case ModeNone, ModeConsole, ModeFile, ModeNetwork:
			seen[m] = true
			out = append(out, m)
		default:
			warnings = append(warnings, &ConfigValueError{Key: "modes", Value: m, Default: "(dropped)"})
		}
	}
	if len(out) == 0 {
		return []string{ModeNone}, warnings
	}
	if seen[ModeNone] && len(out) > 1 {
		warnings = append(warnings, &ConfigValueError{Key: "modes", Value: ModeNone, Default: "(dropped, combined with other modes)"})
		filtered := out[:0]
		for _, m := range out {
			if m != ModeNone {
				filtered = append(filtered, m)
			}
		}
		out = filtered
	}
	return out, warnings
}

// silent reports whether the mode set is exactly {none}.
func (c *Config) silent() bool {
	return len(c.Modes) == 1 && c.Modes[0] == ModeNone
}

// baseLevel returns the parsed base level. Call after normalize.
func (c *Config) baseLevel() Level {
	level, err := ParseLevel(c.Level)
	if err != nil {
		return LevelInfo
	}
	return level
}

// Environment variable names consumed by FromEnv.
const (
	EnvMode        = "LOG_MODE" // Comma-separated mode list
	EnvFilePath    = "LOG_FILE_PATH"
	EnvFileSizeMB  = "LOG_FILE_SIZE_MB"
	EnvMaxLogFiles = "LOG_NUMBER_OF_LOG_FILES"
	EnvNetworkIP   = "LOG_NETWORK_IP"
	EnvNetworkPort = "LOG_NETWORK_PORT"
	EnvLevel       = "LOG_LEVEL"
	EnvPattern     = "LOG_PATTERN"
	EnvUDPFormat   = "LOG_UDP_FORMAT"
	EnvBufferSize  = "LOG_BUFFER_SIZE"
)

// FromEnv builds a Config from LOG_* environment variables. Malformed values
// produce ConfigValueError warnings and fall back to defaults; the returned
// Config is always usable. When LOG_MODE is unset the mode set is {none}.
func FromEnv() (*Config, []error) {
	cfg := DefaultConfig()
	cfg.Modes = nil
	var warnings []error

	if modeStr := os.Getenv(EnvMode); modeStr != "" {
		for _, m := range strings.Split(modeStr, ",") {
			if m = strings.TrimSpace(m); m != "" {
				cfg.Modes = append(cfg.Modes, m)
			}
		}
	}
	if len(cfg.Modes) == 0 {
		cfg.Modes = []string{ModeNone}
	}

	cfg.FilePath = os.Getenv(EnvFilePath)
	cfg.NetworkHost = os.Getenv(EnvNetworkIP)

	if v := os.Getenv(EnvLevel); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv(EnvPattern); v != "" {
		cfg.Pattern = v
	}
	if v := os.Getenv(EnvUDPFormat); v != "" {
		cfg.UDPFormat = v
	}

	warnings = envInt64(EnvFileSizeMB, &cfg.FileSizeMB, warnings)
	warnings = envInt64(EnvMaxLogFiles, &cfg.MaxLogFiles, warnings)
	warnings = envInt64(EnvNetworkPort, &cfg.NetworkPort, warnings)
	warnings = envInt64(EnvBufferSize, &cfg.BufferSize, warnings)

	warnings = append(warnings, cfg.normalize()...)
	return cfg, warnings
}

// envInt64 parses an integer environment variable into dst, keeping the
// current value and recording a warning when the value is malformed.
func envInt64(key string, dst *int64, warnings []error) []error {
	v := os.Getenv(key)
	if v == "" {
		return warnings
	}
	parsed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return append(warnings, &ConfigValueError{Key: key, Value: v, Default: *dst})
	}
	*dst = parsed
	return warnings
}

// NewConfigFromFile loads configuration from a TOML file and returns a
// normalized Config along with any substitution warnings.
func NewConfigFromFile(path string) (*Config, []error, error) {
	cfg := DefaultConfig()

	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("logix.", *cfg); err != nil {
		return nil, nil, errors.Wrap(err, "logix: failed to register config struct")
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, nil, errors.Wrapf(err, "logix: failed to load config from %s", path)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "logix.", cfg); err != nil {
		return nil, nil, errors.Wrap(err, "logix: failed to extract config values")
	}

	warnings := cfg.normalize()
	return cfg, warnings, nil
}

// extractConfig copies values from the loader into cfg using the toml tags.
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		key := prefix + tomlTag
		val, found := loader.Get(key)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion.
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	case reflect.Slice:
		switch v := value.(type) {
		case []string:
			field.Set(reflect.ValueOf(v))
		case []any:
			strs := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return fmt.Errorf("expected string element, got %T", item)
				}
				strs = append(strs, s)
			}
			field.Set(reflect.ValueOf(strs))
		default:
			return fmt.Errorf("expected string slice, got %T", value)
		}

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}
