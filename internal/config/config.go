package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the repository root when --config is not given.
const DefaultFileName = ".shortnotes.yml"

// ErrInvalid is returned when a config file parses but holds unusable values.
var ErrInvalid = errors.New("invalid config")

// Replacement is one whole-word jargon substitution.
type Replacement struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Keywords holds the substring groups used to classify commits.
type Keywords struct {
	Features     []string `yaml:"features"`
	Fixes        []string `yaml:"fixes"`
	Improvements []string `yaml:"improvements"`
}

// GitHub holds settings for the publish command.
type GitHub struct {
	Repository string `yaml:"repository,omitempty"`
}

// Config drives every stage of note generation. Zero values fall back to defaults.
type Config struct {
	AppName      string `yaml:"app_name"`
	GenericLine  string `yaml:"generic_line"`
	FeedbackLine string `yaml:"feedback_line"`
	SignoffLine  string `yaml:"signoff_line"`
	TagPattern   string `yaml:"tag_pattern"`

	MaxLength       int `yaml:"max_length"`
	TruncateAt      int `yaml:"truncate_at"`
	BulletMaxLength int `yaml:"bullet_max_length"`
	MaxBullets      int `yaml:"max_bullets"`

	SkipPhrases []string      `yaml:"skip_phrases"`
	Keywords    Keywords      `yaml:"keywords"`
	Jargon      []Replacement `yaml:"jargon"`

	GitHub GitHub `yaml:"github,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		AppName:         "SmartCommute",
		GenericLine:     "Bug fixes and performance improvements.",
		FeedbackLine:    "Questions or feedback? Leave a review or contact us!",
		SignoffLine:     "Happy commuting! 🚇",
		TagPattern:      `^v[0-9]`,
		MaxLength:       500,
		TruncateAt:      480,
		BulletMaxLength: 60,
		MaxBullets:      2,
		SkipPhrases:     []string{"bump version", "generated with claude"},
		Keywords: Keywords{
			Features:     []string{"feat", "feature", "add", "implement", "new"},
			Fixes:        []string{"fix", "bug", "issue", "resolve", "correct"},
			Improvements: []string{"improve", "enhance", "update", "refactor", "optimize"},
		},
		Jargon: []Replacement{
			{From: "refactor", To: "improve"},
			{From: "impl", To: "implement"},
			{From: "deps", To: "dependencies"},
			{From: "config", To: "configuration"},
			{From: "repo", To: "repository"},
		},
	}
}

// Load reads a YAML config. A missing file is not an error: defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg = merge(cfg, fileCfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks limits and patterns that would otherwise fail at render time.
func (c Config) Validate() error {
	if c.MaxBullets < 1 {
		return fmt.Errorf("%w: max_bullets must be at least 1, got %d", ErrInvalid, c.MaxBullets)
	}
	if c.BulletMaxLength < 4 {
		return fmt.Errorf("%w: bullet_max_length must be at least 4, got %d", ErrInvalid, c.BulletMaxLength)
	}
	if c.MaxLength <= c.BulletMaxLength {
		return fmt.Errorf("%w: max_length (%d) must exceed bullet_max_length (%d)", ErrInvalid, c.MaxLength, c.BulletMaxLength)
	}
	if n := utf8.RuneCountInString("...\n\n" + c.SignoffLine); n >= c.MaxLength {
		return fmt.Errorf("%w: signoff_line plus ellipsis (%d) must be shorter than max_length (%d)", ErrInvalid, n, c.MaxLength)
	}
	if c.TruncateAt < 1 || c.TruncateAt > c.MaxLength {
		return fmt.Errorf("%w: truncate_at must be between 1 and max_length, got %d", ErrInvalid, c.TruncateAt)
	}
	if _, err := regexp.Compile(c.TagPattern); err != nil {
		return fmt.Errorf("%w: tag_pattern: %v", ErrInvalid, err)
	}
	return nil
}

// Write stores cfg as YAML at path. It refuses to overwrite unless force is set.
func Write(path string, cfg Config, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func merge(base, over Config) Config {
	if over.AppName != "" {
		base.AppName = over.AppName
	}
	if over.GenericLine != "" {
		base.GenericLine = over.GenericLine
	}
	if over.FeedbackLine != "" {
		base.FeedbackLine = over.FeedbackLine
	}
	if over.SignoffLine != "" {
		base.SignoffLine = over.SignoffLine
	}
	if over.TagPattern != "" {
		base.TagPattern = over.TagPattern
	}
	if over.MaxLength != 0 {
		base.MaxLength = over.MaxLength
	}
	if over.TruncateAt != 0 {
		base.TruncateAt = over.TruncateAt
	}
	if over.BulletMaxLength != 0 {
		base.BulletMaxLength = over.BulletMaxLength
	}
	if over.MaxBullets != 0 {
		base.MaxBullets = over.MaxBullets
	}
	if over.SkipPhrases != nil {
		base.SkipPhrases = over.SkipPhrases
	}
	if over.Keywords.Features != nil {
		base.Keywords.Features = over.Keywords.Features
	}
	if over.Keywords.Fixes != nil {
		base.Keywords.Fixes = over.Keywords.Fixes
	}
	if over.Keywords.Improvements != nil {
		base.Keywords.Improvements = over.Keywords.Improvements
	}
	if over.Jargon != nil {
		base.Jargon = over.Jargon
	}
	if over.GitHub.Repository != "" {
		base.GitHub.Repository = over.GitHub.Repository
	}
	return base
}
