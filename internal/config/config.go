// Package config loads the YAML configuration file of the md2word CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-md2word"
	"github.com/alnah/go-md2word/internal/fileutil"
	"github.com/alnah/go-md2word/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDir is the directory name under the user config directory.
const AppDir = "go-md2word"

// Field length limits.
const (
	MaxStyleValueLength = 100  // font family, size, line height, alignment
	MaxTitleLength      = 200  // document title
	MaxPathLength       = 4096 // directories
	MaxOriginLength     = 253  // DNS name limit
	MaxOrigins          = 50   // excluded link origins
	MaxAddrLength       = 255  // host:port
)

// Server defaults.
const (
	DefaultServerAddr = "127.0.0.1:8080"
	DefaultCacheTTL   = 10 * time.Minute
)

// Config holds all configuration for the CLI and the preview server.
type Config struct {
	Style    StyleConfig    `yaml:"style"`
	Document DocumentConfig `yaml:"document"`
	Output   OutputConfig   `yaml:"output"`
	Links    LinksConfig    `yaml:"links"`
	Assets   AssetsConfig   `yaml:"assets"`
	Server   ServerConfig   `yaml:"server"`
}

// StyleConfig defines typography. Empty values take the library defaults.
type StyleConfig struct {
	FontFamily string `yaml:"fontFamily"` // "Georgia" or "Georgia, serif"
	FontSize   string `yaml:"fontSize"`   // "16px", "11pt"
	LineHeight string `yaml:"lineHeight"` // "1.5"
	Align      string `yaml:"align"`      // "left", "justify", "center", "right"
	Regional   bool   `yaml:"regional"`   // German academic preset
}

// DocumentConfig defines document metadata.
type DocumentConfig struct {
	Title string `yaml:"title"` // Empty = "Markdown Document"
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = current directory)
}

// LinksConfig defines link handling in pasted HTML.
type LinksConfig struct {
	ExcludedOrigins []string `yaml:"excludedOrigins"` // Empty = built-in list
}

// AssetsConfig defines template overrides.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded templates
}

// ServerConfig defines the preview server.
type ServerConfig struct {
	Addr     string `yaml:"addr"`     // host:port (default 127.0.0.1:8080)
	CacheTTL string `yaml:"cacheTTL"` // Go duration, e.g. "10m"
}

// StyleValue converts the style section for the library.
func (c *Config) StyleValue() md2word.Style {
	return md2word.Style{
		FontFamily: c.Style.FontFamily,
		FontSize:   c.Style.FontSize,
		LineHeight: c.Style.LineHeight,
		Align:      c.Style.Align,
		Regional:   c.Style.Regional,
	}
}

// CacheDuration returns the preview cache TTL, or DefaultCacheTTL when unset.
// Validate rejects unparseable values, so the error is not surfaced here.
func (s ServerConfig) CacheDuration() time.Duration {
	if s.CacheTTL == "" {
		return DefaultCacheTTL
	}
	d, err := time.ParseDuration(s.CacheTTL)
	if err != nil {
		return DefaultCacheTTL
	}
	return d
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"style.fontFamily", c.Style.FontFamily},
		{"style.fontSize", c.Style.FontSize},
		{"style.lineHeight", c.Style.LineHeight},
		{"style.align", c.Style.Align},
	} {
		if err := validateFieldLength(f.name, f.value, MaxStyleValueLength); err != nil {
			return err
		}
	}
	if err := c.StyleValue().Validate(); err != nil {
		return fmt.Errorf("style: %w", err)
	}

	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	if len(c.Links.ExcludedOrigins) > MaxOrigins {
		return fmt.Errorf("%w: links.excludedOrigins has %d entries (max %d)", ErrInvalidValue, len(c.Links.ExcludedOrigins), MaxOrigins)
	}
	for i, origin := range c.Links.ExcludedOrigins {
		name := fmt.Sprintf("links.excludedOrigins[%d]", i)
		if strings.TrimSpace(origin) == "" {
			return fmt.Errorf("%w: %s is empty", ErrInvalidValue, name)
		}
		if err := validateFieldLength(name, origin, MaxOriginLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("server.addr", c.Server.Addr, MaxAddrLength); err != nil {
		return err
	}
	if c.Server.CacheTTL != "" {
		d, err := time.ParseDuration(c.Server.CacheTTL)
		if err != nil {
			return fmt.Errorf("%w: server.cacheTTL %q: %v", ErrInvalidValue, c.Server.CacheTTL, err)
		}
		if d < 0 {
			return fmt.Errorf("%w: server.cacheTTL must not be negative, got %s", ErrInvalidValue, d)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Addr: DefaultServerAddr},
	}
}

// NotFoundError reports the locations searched for a named config.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s (tried %s)", ErrConfigNotFound, e.Name, strings.Join(e.Tried, ", "))
}

// Is makes errors.Is(err, ErrConfigNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Missing fields keep the values of DefaultConfig.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Name: nameOrPath, Tried: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-md2word/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppDir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Name: name, Tried: triedPaths}
}
