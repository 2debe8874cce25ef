package exprlang

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfig(t *testing.T) {
	src := `
echo: true
prelude: false
history: ""
quirks:
  not_equal_is_equal: false
`
	cfg, err := LoadConfig(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Echo:    true,
		Prelude: boolPtr(false),
		Quirks: Quirks{
			ShiftLeftAssignAdds: true,
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("ecko: true\n"))
	if err == nil || !strings.HasPrefix(err.Error(), "config: ") {
		t.Fatalf("want config error but got %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exprlang.yaml")
	if err := os.WriteFile(path, []byte("trace: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Trace || cfg.Prelude != nil {
		t.Errorf("want trace over defaults but got %+v", cfg)
	}

	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("want error for a missing file")
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func TestWantsPrelude(t *testing.T) {
	tests := []struct {
		prelude     *bool
		interactive bool
		want        bool
	}{
		{prelude: nil, interactive: true, want: true},
		{prelude: nil, interactive: false, want: false},
		{prelude: boolPtr(true), interactive: false, want: true},
		{prelude: boolPtr(false), interactive: true, want: false},
	}
	for _, test := range tests {
		cfg := DefaultConfig()
		cfg.Prelude = test.prelude
		if got := cfg.WantsPrelude(test.interactive); got != test.want {
			t.Errorf("prelude %v, interactive %v: want %v but got %v",
				test.prelude, test.interactive, test.want, got)
		}
	}
}
