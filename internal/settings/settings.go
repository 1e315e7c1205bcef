package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"phrase-highlighter/internal/diagnostic"
	"phrase-highlighter/internal/policy"
)

// Environment variables that override persisted values.
const (
	EnvMinSimilarity = "PHRASE_HIGHLIGHTER_MIN_SIMILARITY"
	EnvCaseSensitive = "PHRASE_HIGHLIGHTER_CASE_SENSITIVE"
)

// Settings is the persisted configuration: the matching policy plus the
// preferences of the highlighting front end.
type Settings struct {
	policy.Policy `yaml:",inline"`

	// UseTranslationMemory lets pre-computed alignments replace word matching.
	UseTranslationMemory bool `json:"useTranslationMemory" yaml:"use_translation_memory"`
	// AutoHighlight highlights a segment as soon as it becomes active.
	AutoHighlight bool `json:"autoHighlight" yaml:"auto_highlight"`
	// ShowConfidenceScores includes match confidence in rendered output.
	ShowConfidenceScores bool `json:"showConfidenceScores" yaml:"show_confidence_scores"`
}

// DefaultSettings returns the settings used when nothing is persisted.
func DefaultSettings() *Settings {
	return &Settings{
		Policy:               policy.Default(),
		UseTranslationMemory: true,
		AutoHighlight:        false,
		ShowConfidenceScores: true,
	}
}

// Reset restores every value to its default.
func (s *Settings) Reset() {
	*s = *DefaultSettings()
}

// Load loads settings from the default location.
func Load() (*Settings, error) {
	return LoadFromFile(DefaultPaths().SettingsFile())
}

// LoadFromFile loads settings from path and applies the environment
// overrides. Use it for matching; the result must not be saved back.
func LoadFromFile(path string) (*Settings, error) {
	s, err := read(path)
	if err != nil {
		return nil, err
	}

	s.ApplyEnvOverrides()

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return s, nil
}

// ReadFromFile loads only the persisted values from path, without
// environment overrides, so they can be edited and saved again.
func ReadFromFile(path string) (*Settings, error) {
	s, err := read(path)
	if err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return s, nil
}

// read parses path over the defaults. A missing file yields defaults.
// Files ending in .yaml or .yml are read as YAML, anything else as JSON.
func read(path string) (*Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}

		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := unmarshal(path, data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	return s, nil
}

// Save writes settings to the default location.
func (s *Settings) Save() error {
	return s.SaveToFile(DefaultPaths().SettingsFile())
}

// SaveToFile writes settings to path, creating its directory if needed.
func (s *Settings) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := marshal(path, s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Validate checks the embedded policy.
func (s *Settings) Validate() error {
	return s.Policy.Validate()
}

// ApplyEnvOverrides applies environment variable overrides.
// Unparseable values are ignored.
func (s *Settings) ApplyEnvOverrides() {
	if v := os.Getenv(EnvMinSimilarity); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			s.MinSimilarityScore = f
		}
	}

	if v := os.Getenv(EnvCaseSensitive); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.CaseSensitive = b
		}
	}
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	return ext == ".yaml" || ext == ".yml"
}

func unmarshal(path string, data []byte, s *Settings) error {
	if isYAML(path) {
		return yaml.Unmarshal(data, s)
	}

	return json.Unmarshal(data, s)
}

func marshal(path string, s *Settings) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(s)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}

// Key describes one settable setting.
type Key struct {
	Name        string
	Description string
	get         func(s *Settings) string
	set         func(s *Settings, value string) error
}

var keys = []Key{
	{
		Name:        "min_phrase_length",
		Description: "minimum phrase length in characters",
		get:         func(s *Settings) string { return strconv.Itoa(s.MinPhraseLength) },
		set:         func(s *Settings, v string) error { return setInt(&s.MinPhraseLength, v) },
	},
	{
		Name:        "min_word_length",
		Description: "minimum word length in characters",
		get:         func(s *Settings) string { return strconv.Itoa(s.MinWordLength) },
		set:         func(s *Settings, v string) error { return setInt(&s.MinWordLength, v) },
	},
	{
		Name:        "min_similarity_score",
		Description: "minimum token similarity (0-1)",
		get:         func(s *Settings) string { return strconv.FormatFloat(s.MinSimilarityScore, 'g', -1, 64) },
		set:         func(s *Settings, v string) error { return setFloat(&s.MinSimilarityScore, v) },
	},
	{
		Name:        "max_gap_size",
		Description: "maximum gap in characters between merged words",
		get:         func(s *Settings) string { return strconv.Itoa(s.MaxGapSize) },
		set:         func(s *Settings, v string) error { return setInt(&s.MaxGapSize, v) },
	},
	{
		Name:        "case_sensitive",
		Description: "compare words case-sensitively",
		get:         func(s *Settings) string { return strconv.FormatBool(s.CaseSensitive) },
		set:         func(s *Settings, v string) error { return setBool(&s.CaseSensitive, v) },
	},
	{
		Name:        "use_translation_memory",
		Description: "prefer pre-computed alignments when present",
		get:         func(s *Settings) string { return strconv.FormatBool(s.UseTranslationMemory) },
		set:         func(s *Settings, v string) error { return setBool(&s.UseTranslationMemory, v) },
	},
	{
		Name:        "auto_highlight",
		Description: "highlight segments automatically",
		get:         func(s *Settings) string { return strconv.FormatBool(s.AutoHighlight) },
		set:         func(s *Settings, v string) error { return setBool(&s.AutoHighlight, v) },
	},
	{
		Name:        "show_confidence_scores",
		Description: "show match confidence in output",
		get:         func(s *Settings) string { return strconv.FormatBool(s.ShowConfidenceScores) },
		set:         func(s *Settings, v string) error { return setBool(&s.ShowConfidenceScores, v) },
	},
}

// ListKeys returns every settable key in display order.
func ListKeys() []Key {
	out := make([]Key, len(keys))
	copy(out, keys)

	return out
}

func lookup(name string) (Key, error) {
	for _, k := range keys {
		if k.Name == name {
			return k, nil
		}
	}

	return Key{}, fmt.Errorf("unknown setting: %s", name)
}

// Get returns the value of a setting as a string.
func (s *Settings) Get(name string) (string, error) {
	k, err := lookup(name)
	if err != nil {
		return "", err
	}

	return k.get(s), nil
}

// Set parses value and assigns it to the named setting. The result is not
// validated; call Validate before persisting.
func (s *Settings) Set(name, value string) error {
	k, err := lookup(name)
	if err != nil {
		return err
	}

	if err := k.set(s, value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", name, err)
	}

	return nil
}

func setInt(dst *int, value string) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return err
	}

	*dst = n

	return nil
}

func setFloat(dst *float64, value string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return err
	}

	*dst = f

	return nil
}

func setBool(dst *bool, value string) error {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return err
	}

	*dst = b

	return nil
}

// Diagnose reports settings that are valid but unlikely to produce useful
// highlights.
func (s *Settings) Diagnose() diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if err := s.Validate(); err != nil {
		diags.AddError("invalid_settings", err.Error(), "", "")
	}

	if s.MinSimilarityScore > 0 && s.MinSimilarityScore < 0.5 {
		diags.AddWarning("loose_similarity",
			fmt.Sprintf("min similarity %.2f pairs unrelated words", s.MinSimilarityScore),
			"", "min_similarity_score")
	}

	if s.MinWordLength > s.MinPhraseLength {
		diags.AddInfo("word_longer_than_phrase",
			"min word length exceeds min phrase length; phrase filter has no effect on single words",
			"", "min_word_length")
	}

	return diags
}
