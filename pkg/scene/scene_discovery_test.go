package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"sphere-grid", "Sphere Grid"},
		{"dragon_gold", "Dragon Gold"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestDiscover_BuiltinsOnly(t *testing.T) {
	scenes, err := Discover(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}

	if len(scenes) != len(builtins) {
		t.Fatalf("Expected %d built-in scenes, got %d", len(builtins), len(scenes))
	}
	for _, s := range scenes {
		if s.Type != "builtin" {
			t.Errorf("Expected builtin type for %s, got %q", s.ID, s.Type)
		}
		if s.DisplayName == "" || s.Description == "" {
			t.Errorf("Scene %s is missing display metadata", s.ID)
		}
	}
}

func TestDiscover_SceneFiles(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"named.yaml":    "name: Mirror Room\ndescription: Two mirrors facing each other\n",
		"plain-box.yml": "spheres: []\n",
		"broken.yaml":   "name: [unterminated\n",
		"notes.txt":     "not a scene",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	scenes, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}

	var fileScenes []SceneInfo
	for _, s := range scenes {
		if s.Type == "file" {
			fileScenes = append(fileScenes, s)
		}
	}

	// broken.yaml is skipped, notes.txt is not a scene file
	if len(fileScenes) != 2 {
		t.Fatalf("Expected 2 file scenes, got %d: %+v", len(fileScenes), fileScenes)
	}

	if fileScenes[0].DisplayName != "Mirror Room" {
		t.Errorf("DisplayName = %q, want %q", fileScenes[0].DisplayName, "Mirror Room")
	}
	if fileScenes[0].Description != "Two mirrors facing each other" {
		t.Errorf("Description = %q, want %q", fileScenes[0].Description, "Two mirrors facing each other")
	}
	if fileScenes[1].DisplayName != "Plain Box" {
		t.Errorf("DisplayName = %q, want %q", fileScenes[1].DisplayName, "Plain Box")
	}
	if fileScenes[1].FilePath != filepath.Join(dir, "plain-box.yml") {
		t.Errorf("FilePath = %q", fileScenes[1].FilePath)
	}
}
