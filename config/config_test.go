package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadConfig(t *testing.T) {
	conf := DefaultConfig()
	conf.Depth = 3
	conf.EmojiTheme = "animals"

	filename := filepath.Join(t.TempDir(), "stegocli-test-config.yaml")
	if err := Save(filename, &conf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(filename)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Depth != 3 || loaded.EmojiTheme != "animals" {
		t.Errorf("loaded = %+v, want Depth=3 EmojiTheme=animals", loaded)
	}
}

func TestLoadMissingFieldsFallBackToDefaults(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "partial-config.yaml")
	if err := os.WriteFile(filename, []byte("default_depth: 4\n"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	loaded, err := Load(filename)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Depth != 4 {
		t.Errorf("Depth = %d, want 4", loaded.Depth)
	}
	if loaded.PBKDF2Iterations != DefaultConfig().PBKDF2Iterations {
		t.Errorf("PBKDF2Iterations = %d, want the default", loaded.PBKDF2Iterations)
	}
}
