package gasmconfigs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/braingasm/configs"
	"github.com/reusee/braingasm/modes"
	"github.com/reusee/dscope"
)

func TestConfigsLoader(t *testing.T) {
	workDir := t.TempDir()
	configHome := t.TempDir()
	t.Chdir(workDir)
	t.Setenv("XDG_CONFIG_HOME", configHome)

	if err := os.WriteFile(filepath.Join(workDir, ".gasm.cue"), []byte(`quit_code: 7`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(configHome, "braingasm"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configHome, "braingasm", "gasm.cue"), []byte("quit_code: 9\nseed: 5"), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		loader configs.Loader,
		quitCode QuitCode,
		seed Seed,
	) {
		if err := loader.Err(); err != nil {
			t.Fatal(err)
		}
		if len(loader.Paths()) < 2 {
			t.Fatalf("got %v", loader.Paths())
		}
		// working directory first
		if quitCode != 7 {
			t.Fatalf("got %v", quitCode)
		}
		if seed != 5 {
			t.Fatalf("got %v", seed)
		}
	})
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	if got := discover([]string{dir}); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
	for _, name := range filenames {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	got := discover([]string{dir, filepath.Join(dir, "none")})
	if len(got) != len(filenames) || filepath.Base(got[0]) != "gasm.cue" {
		t.Fatalf("got %v", got)
	}
}
