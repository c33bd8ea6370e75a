package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/fluxt/star-wars/pkg/logger"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string // Built-in name or file path
	DisplayName string
	Description string
	Type        string // "builtin" or "file"
	FilePath    string // Scene file (file type only)
}

// sceneHeader is the part of a scene file needed for listing
type sceneHeader struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Discover lists the built-in scenes followed by the YAML scene files in dir.
// A missing directory yields only the built-in scenes.
func Discover(dir string) ([]SceneInfo, error) {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, name := range Names() {
		scenes = append(scenes, SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Description: builtins[name].description,
			Type:        "builtin",
		})
	}

	if dir == "" {
		return scenes, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return scenes, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	for _, path := range files {
		info, err := readSceneInfo(path)
		if err != nil {
			// Keep listing the other files
			logger.Warn("Failed to read scene metadata", zap.String("file", path), zap.Error(err))
			continue
		}
		scenes = append(scenes, info)
	}

	return scenes, nil
}

// readSceneInfo extracts the name and description of a scene file, falling back to the file name
func readSceneInfo(path string) (SceneInfo, error) {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	info := SceneInfo{
		ID:          path,
		DisplayName: titleCase(base),
		Type:        "file",
		FilePath:    path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return info, err
	}

	var header sceneHeader
	if err := yaml.Unmarshal(data, &header); err != nil {
		return info, err
	}
	if header.Name != "" {
		info.DisplayName = header.Name
	}
	info.Description = header.Description
	return info, nil
}

// titleCase converts a filename-style string to title case
// e.g., "sphere-grid" -> "Sphere Grid"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
