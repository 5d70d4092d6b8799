package pslstat

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the run configuration of the analyzer.
type Config struct {
	URL         string   `yaml:"url"`
	UserAgent   string   `yaml:"user_agent"`
	ExcludeTLDs []string `yaml:"exclude_tlds"`
	OutputDir   string   `yaml:"output_dir"`
}

// DefaultConfig mirrors the reference analysis setup.
var DefaultConfig = Config{
	URL:         DefaultSourceURL,
	ExcludeTLDs: []string{"it", "jp", "no"},
	OutputDir:   ".",
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml file with default values
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(DefaultConfig)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}
