package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Title string

	// Discovery settings
	TestPath      string
	Extension     string
	ExcludedFiles []string

	// Syntax check settings
	SyntaxTool    string
	SyntaxTimeout time.Duration

	// Structure and UI pattern settings
	ClassSuffix string
	BaseClass   string
	UIPatterns  []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ConfigFile string
	Verbose    bool
	NoColor    bool
	NameFilter string
	NoSyntax   bool
	SyntaxTool string
	Timeout    time.Duration
	JSONOutput string
	Quiet      bool
	TestCases  bool
}

// fileConfig mirrors the YAML file layout. Unset fields keep their defaults.
type fileConfig struct {
	Title         string        `yaml:"title"`
	TestPath      string        `yaml:"test_path"`
	Extension     string        `yaml:"extension"`
	ExcludedFiles []string      `yaml:"excluded_files"`
	SyntaxTool    string        `yaml:"syntax_tool"`
	SyntaxTimeout time.Duration `yaml:"syntax_timeout"`
	ClassSuffix   string        `yaml:"class_suffix"`
	BaseClass     string        `yaml:"base_class"`
	UIPatterns    []string      `yaml:"ui_patterns"`
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		Title:         DefaultTitle,
		TestPath:      DefaultTestPath,
		Extension:     DefaultExtension,
		SyntaxTool:    DefaultSyntaxTool,
		SyntaxTimeout: DefaultSyntaxTimeout,
		ClassSuffix:   DefaultClassSuffix,
		BaseClass:     DefaultBaseClass,
	}
	cfg.ExcludedFiles = append([]string(nil), DefaultExcludedFiles...)
	cfg.UIPatterns = append([]string(nil), DefaultUIPatterns...)
	return cfg
}

// LoadFile overlays values from a YAML file onto the config.
// Unknown keys are rejected.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&fc); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	if fc.Title != "" {
		c.Title = fc.Title
	}
	if fc.TestPath != "" {
		c.TestPath = fc.TestPath
	}
	if fc.Extension != "" {
		c.Extension = fc.Extension
	}
	if fc.ExcludedFiles != nil {
		c.ExcludedFiles = fc.ExcludedFiles
	}
	if fc.SyntaxTool != "" {
		c.SyntaxTool = fc.SyntaxTool
	}
	if fc.SyntaxTimeout > 0 {
		c.SyntaxTimeout = fc.SyntaxTimeout
	}
	if fc.ClassSuffix != "" {
		c.ClassSuffix = fc.ClassSuffix
	}
	if fc.BaseClass != "" {
		c.BaseClass = fc.BaseClass
	}
	if len(fc.UIPatterns) > 0 {
		c.UIPatterns = fc.UIPatterns
	}
	return nil
}

// LoadEnv loads a .env file from the working directory, if any, and applies
// environment overrides.
func (c *Config) LoadEnv() {
	// .env is optional
	_ = godotenv.Load()

	if tool := os.Getenv(SyntaxToolEnv); tool != "" {
		c.SyntaxTool = tool
	}
}

// Apply resolves the config file, environment and flags in that order.
func (c *Config) Apply(flags Flags) error {
	c.Flags = flags
	if flags.ConfigFile != "" {
		if err := c.LoadFile(flags.ConfigFile); err != nil {
			return err
		}
	}
	c.LoadEnv()

	if flags.SyntaxTool != "" {
		c.SyntaxTool = flags.SyntaxTool
	}
	if flags.Timeout > 0 {
		c.SyntaxTimeout = flags.Timeout
	}
	return nil
}

// GetTestPath returns the directory to validate, preferring the positional argument
func (c *Config) GetTestPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return c.TestPath
}

// GetOutputPath returns the absolute path of the JSON report, or "" when no report was requested
func (c *Config) GetOutputPath() string {
	if c.Flags.JSONOutput == "" {
		return ""
	}
	if abs, err := filepath.Abs(c.Flags.JSONOutput); err == nil {
		return abs
	}
	return c.Flags.JSONOutput
}
