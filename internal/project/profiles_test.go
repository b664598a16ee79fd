package project

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/piwi3910/BlockFit/internal/model"
)

func TestSaveAndLoadProfiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.json")

	profiles := []model.SettingsProfile{
		{
			Name:        "Quick",
			Description: "Give up early",
			Settings:    model.SolveSettings{SortThreshold: 8, MaxCalls: 10000, Timeout: 2 * time.Second},
		},
		{
			Name:     "Input order",
			Settings: model.SolveSettings{DisableOrdering: true},
		},
	}

	if err := SaveProfiles(path, profiles); err != nil {
		t.Fatalf("SaveProfiles: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("profiles file was not created")
	}

	loaded, err := LoadProfiles(path)
	if err != nil {
		t.Fatalf("LoadProfiles: %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(loaded))
	}
	if loaded[0].Name != "Quick" {
		t.Errorf("expected name Quick, got %s", loaded[0].Name)
	}
	if loaded[0].Settings.Timeout != 2*time.Second {
		t.Errorf("expected 2s timeout, got %v", loaded[0].Settings.Timeout)
	}
	if !loaded[1].Settings.DisableOrdering {
		t.Error("expected DisableOrdering on second profile")
	}
}

func TestLoadProfilesNonExistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.json")

	profiles, err := LoadProfiles(path)
	if err != nil {
		t.Fatalf("expected no error for nonexistent file, got: %v", err)
	}
	if profiles == nil || len(profiles) != 0 {
		t.Fatalf("expected empty slice for nonexistent file, got %v", profiles)
	}
}

func TestLoadProfilesInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("not valid json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadProfiles(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestExportAndImportProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.json")

	profile := model.SettingsProfile{Name: "Shared", Settings: model.SolveSettings{SortThreshold: -1}}
	if err := ExportProfile(path, profile); err != nil {
		t.Fatalf("ExportProfile: %v", err)
	}

	imported, err := ImportProfile(path)
	if err != nil {
		t.Fatalf("ImportProfile: %v", err)
	}
	if imported.Name != "Shared" || imported.Settings.SortThreshold != -1 {
		t.Errorf("unexpected imported profile %+v", imported)
	}
}

func TestImportProfileNoName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noname.json")
	if err := os.WriteFile(path, []byte(`{"settings":{"max_calls":5}}`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ImportProfile(path); err == nil {
		t.Fatal("expected error for profile without a name")
	}
}
