package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the nlpkit tool.
type Config struct {
	Models     ModelsConfig     `yaml:"models"`
	Preprocess PreprocessConfig `yaml:"preprocess"`
	Demo       DemoConfig       `yaml:"demo"`
	Batch      BatchConfig      `yaml:"batch"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ModelsConfig locates the pretrained model resources.
type ModelsConfig struct {
	Dir       string `yaml:"dir"`        // relative paths resolve against the root directory
	Sentence  string `yaml:"sentence"`   // Punkt training JSON, relative to Dir
	POS       string `yaml:"pos"`        // perceptron model directory, relative to Dir
	NERPerson string `yaml:"ner_person"` // optional prose model directory, relative to Dir
}

// PreprocessConfig holds text cleaning configuration.
type PreprocessConfig struct {
	Stopwords     []string `yaml:"stopwords"`      // replaces the default set when non-empty
	StopwordsFile string   `yaml:"stopwords_file"` // one word per line, '#' starts a comment
}

// DemoConfig holds the text used by the interactive menu.
type DemoConfig struct {
	SampleText string `yaml:"sample_text"`
}

// BatchConfig holds batch preprocessing configuration.
type BatchConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" or "json"
}

// ModelPaths holds absolute model locations.
type ModelPaths struct {
	Sentence  string
	POS       string
	NERPerson string
}

// DefaultSampleText is the text the menu demonstrations run against.
const DefaultSampleText = "Olá, meu nome é Renato. Trabalho com ciência de dados em São Paulo. " +
	"Gosto de aprender NLP em Java usando Apache OpenNLP."

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Models: ModelsConfig{
			Dir:       "models",
			Sentence:  "sentence.json",
			POS:       "pos",
			NERPerson: "ner-person",
		},
		Demo: DemoConfig{
			SampleText: DefaultSampleText,
		},
		Batch: BatchConfig{
			Includes: []string{"**/*.txt", "**/*.md"},
			Excludes: []string{"**/.git/**", "**/node_modules/**", "**/vendor/**", "**/.nlpkit/**"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for nlpkit.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "nlpkit.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".nlpkit", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ModelPaths resolves the configured model locations against root.
// An empty NERPerson entry stays empty, meaning "no person model".
func (c *Config) ModelPaths(root string) ModelPaths {
	dir := c.Models.Dir
	if dir == "" {
		dir = "models"
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	return ModelPaths{
		Sentence:  resolve(c.Models.Sentence),
		POS:       resolve(c.Models.POS),
		NERPerson: resolve(c.Models.NERPerson),
	}
}

// StopwordList returns the configured stopword override: the inline list
// followed by the words of StopwordsFile. A nil result means "use the defaults".
func (c *Config) StopwordList(root string) ([]string, error) {
	words := append([]string(nil), c.Preprocess.Stopwords...)

	if c.Preprocess.StopwordsFile == "" {
		return words, nil
	}

	path := c.Preprocess.StopwordsFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stopwords file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stopwords file: %w", err)
	}
	return words, nil
}
