package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// profileFile is the on-disk layout shared by the YAML and TOML formats.
type profileFile struct {
	Profiles map[string]Profile `yaml:"profiles" toml:"profiles"`
}

// candidateNames are the file names probed in each config directory.
var candidateNames = []string{"profiles.yaml", "profiles.yml", "profiles.toml"}

// Load loads the difficulty presets.
// Search order: customPath -> ~/.sharkshark/profiles.{yaml,yml,toml} ->
// ./configs/profiles.{yaml,yml,toml} -> embedded default.
// Profiles found in a file replace the built-in preset of the same name;
// presets the file does not mention keep their defaults.
func Load(customPath string) (Profiles, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		ps, err := Parse(data, filepath.Ext(customPath))
		if err != nil {
			return nil, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return ps, nil
	}

	// Try user config directory, then local configs directory
	for _, dir := range searchDirs() {
		for _, name := range candidateNames {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if ps, err := Parse(data, filepath.Ext(path)); err == nil {
				return ps, nil
			}
		}
	}

	// Use embedded default YAML
	ps, err := Parse(defaultProfilesYAML, ".yaml")
	if err != nil {
		return DefaultProfiles(), nil // Fallback to hardcoded if embed fails
	}
	return ps, nil
}

// Parse decodes a profile file. ext selects the format (".toml" or YAML).
func Parse(data []byte, ext string) (Profiles, error) {
	var file profileFile

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("toml unmarshal: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("yaml unmarshal: %w", err)
		}
	}

	ps := DefaultProfiles()
	for name, p := range file.Profiles {
		if p.Name == "" {
			p.Name = name
		}
		ps[name] = p
	}

	if err := ps.Validate(); err != nil {
		return nil, err
	}
	return ps, nil
}

// LoadProfile loads the presets and resolves one by name.
func LoadProfile(customPath, name string) (Profile, error) {
	ps, err := Load(customPath)
	if err != nil {
		return Profile{}, err
	}
	return ps.Get(name)
}

// searchDirs returns the user and local config directories in probe order.
func searchDirs() []string {
	dirs := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".sharkshark"))
	}
	return append(dirs, "configs")
}
