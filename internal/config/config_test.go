package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fractalqb/retype"
)

func TestLoadFromReader(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		cfg, err := LoadFromReader(strings.NewReader(`
whitelist:
  - "[name]"
  - "[date]; [place]"
max_tokens: 300
typo_distance: 1
format: markdown
log_level: debug
`))
		if err != nil {
			t.Fatal(err)
		}
		want := &Config{
			Whitelist:    []string{"[name]", "[date]; [place]"},
			MaxTokens:    300,
			TypoDistance: 1,
			Format:       FormatMarkdown,
			LogLevel:     "debug",
		}
		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})
	t.Run("empty is default", func(t *testing.T) {
		cfg, err := LoadFromReader(strings.NewReader(""))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(Default(), cfg); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})
	t.Run("unknown field", func(t *testing.T) {
		if _, err := LoadFromReader(strings.NewReader("colour: red\n")); err == nil {
			t.Error("unknown field accepted")
		}
	})
	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadFromReader(strings.NewReader(`
max_tokens: -2
typo_distance: -1
format: html
log_level: loud
`))
		if err == nil {
			t.Fatal("invalid config accepted")
		}
		for _, frag := range []string{"max_tokens", "typo_distance", "format", "log_level"} {
			if !strings.Contains(err.Error(), frag) {
				t.Errorf("error does not mention %s: %v", frag, err)
			}
		}
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(path, []byte("typo_distance: 0\n"), 0666); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TypoDistance != 0 || cfg.Format != FormatText {
		t.Errorf("unexpected config %+v", cfg)
	}
	if _, err = Load(filepath.Join(dir, "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("want not exist, got %v", err)
	}
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "explicit.yaml")
	if err := os.WriteFile(path, nil, 0666); err != nil {
		t.Fatal(err)
	}
	got, err := Find(path)
	if err != nil || got != path {
		t.Errorf("explicit: %s, %v", got, err)
	}
	if _, err = Find(filepath.Join(dir, "nope.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("want not exist, got %v", err)
	}
}

func TestConfig_RawWhitelist(t *testing.T) {
	cfg := &Config{Whitelist: []string{"[name]", "[date]; [place]"}}
	wl := retype.SessionWhitelist(cfg.RawWhitelist("[name], extra"))
	want := []string{"[kw]", "[KW]", "[name]", "[date]", "[place]", "extra"}
	if diff := cmp.Diff(want, wl.Entries()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	cmpr := cfg.Compare("")
	if cmpr.Whitelist.Len() != 5 {
		t.Errorf("compare whitelist %v", cmpr.Whitelist.Entries())
	}
}

func TestLogLevel_Level(t *testing.T) {
	for lvl, want := range map[LogLevel]string{
		"":      "INFO",
		"debug": "DEBUG",
		"warn":  "WARN",
		"error": "ERROR",
	} {
		if got := lvl.Level().String(); got != want {
			t.Errorf("%q: want %s, got %s", lvl, want, got)
		}
	}
}
