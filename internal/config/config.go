package config

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/darksworm/fuzzypick/internal/match"
)

// Options is the typed configuration of a picker
type Options struct {
	CaseMatching      match.CaseMatching
	MatchPaths        bool
	StartInSearchMode bool
	WrapNavigation    bool
	Scorer            string
}

// Recognized keys. Each may also carry Prefix.
const (
	KeyCaseMatching      = "case_matching"
	KeyMatchPaths        = "match_paths"
	KeyStartInSearchMode = "start_in_search_mode"
	KeyWrapNavigation    = "wrap_navigation"
	KeyScorer            = "scorer"

	// Prefix lets a host pass its whole plugin configuration through
	Prefix = "fuzzypick_"
)

// Default returns the built-in defaults
func Default() Options {
	return Options{
		CaseMatching: match.CaseSmart,
		Scorer:       match.ScorerNative,
	}
}

// MatchOptions returns the options that affect ranking
func (o Options) MatchOptions() match.Options {
	return match.Options{
		CaseMatching: o.CaseMatching,
		MatchPaths:   o.MatchPaths,
	}
}

// Load applies overrides on top of defaults. Every key is parsed on its own:
// a bad value is logged and leaves that field at its default. Unknown keys
// are ignored.
func Load(defaults Options, overrides map[string]string) Options {
	opts := defaults

	if v, ok := lookup(overrides, KeyCaseMatching); ok {
		cm, err := match.ParseCaseMatching(v)
		if err != nil {
			log.Printf("config: %s: %v, keeping %s", KeyCaseMatching, err, opts.CaseMatching)
		} else {
			opts.CaseMatching = cm
		}
	}

	parseBool(overrides, KeyMatchPaths, &opts.MatchPaths)
	parseBool(overrides, KeyStartInSearchMode, &opts.StartInSearchMode)
	parseBool(overrides, KeyWrapNavigation, &opts.WrapNavigation)

	if v, ok := lookup(overrides, KeyScorer); ok {
		if _, err := match.ScorerByName(v); err != nil {
			log.Printf("config: %s: %v, keeping %s", KeyScorer, err, opts.Scorer)
		} else {
			opts.Scorer = strings.ToLower(strings.TrimSpace(v))
		}
	}

	return opts
}

func parseBool(overrides map[string]string, key string, dst *bool) {
	v, ok := lookup(overrides, key)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		log.Printf("config: %s: invalid boolean %q, keeping %t", key, v, *dst)
		return
	}
	*dst = b
}

// StartMode reports whether overrides ask to start in search mode. ok is
// false when the key is absent or its value is not a boolean.
func StartMode(overrides map[string]string) (search, ok bool) {
	v, found := lookup(overrides, KeyStartInSearchMode)
	if !found {
		return false, false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return false, false
	}
	return b, true
}

// lookup prefers the prefixed form of key
func lookup(overrides map[string]string, key string) (string, bool) {
	if v, ok := overrides[Prefix+key]; ok {
		return v, true
	}
	v, ok := overrides[key]
	return v, ok
}

// LoadFile reads a flat TOML table into an overrides map. A missing file
// yields an empty map. Nested tables and arrays are skipped.
func LoadFile(path string) (map[string]string, error) {
	overrides := map[string]string{}

	resolved, err := expandPath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return overrides, nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	for key, value := range raw {
		switch v := value.(type) {
		case string:
			overrides[key] = v
		case bool:
			overrides[key] = strconv.FormatBool(v)
		case int64:
			overrides[key] = strconv.FormatInt(v, 10)
		case float64:
			overrides[key] = strconv.FormatFloat(v, 'g', -1, 64)
		default:
			log.Printf("config: %s: skipping %T value", key, value)
		}
	}
	return overrides, nil
}

// ParseOverride splits a "key=value" command line override
func ParseOverride(s string) (string, string, error) {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", fmt.Errorf("invalid override %q: expected key=value", s)
	}
	return key, value, nil
}

// Merge combines override maps; later maps win
func Merge(maps ...map[string]string) map[string]string {
	merged := map[string]string{}
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}

// Keys lists the recognized keys, for usage text
func Keys() []string {
	keys := []string{KeyCaseMatching, KeyMatchPaths, KeyStartInSearchMode, KeyWrapNavigation, KeyScorer}
	sort.Strings(keys)
	return keys
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
