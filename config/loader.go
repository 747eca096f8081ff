package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// characterFile and bossFile mirror the override file layout: one document
// may redefine any subset of presets, keyed the same way the global maps are.
type characterFile struct {
	Characters []CharacterConfig `yaml:"characters"`
}

type bossFile struct {
	Bosses []BossConfig `yaml:"bosses"`
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// LoadCharacterFile reads character preset overrides from a YAML file and
// applies the valid ones onto the global Characters map. Invalid entries are
// skipped and reported in the returned error list.
func LoadCharacterFile(path string) []error {
	var f characterFile
	if err := loadYAML(path, &f); err != nil {
		return []error{err}
	}
	var errs []error
	for _, c := range f.Characters {
		if err := c.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		Characters[c.Kind] = c
	}
	return errs
}

// LoadBossFile reads boss preset overrides from a YAML file and applies the
// valid ones onto the global Bosses map.
func LoadBossFile(path string) []error {
	var f bossFile
	if err := loadYAML(path, &f); err != nil {
		return []error{err}
	}
	var errs []error
	for _, b := range f.Bosses {
		if err := b.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		Bosses[b.Name] = b
	}
	return errs
}

// LoadDir applies every *.yaml file in dir. Files named boss*.yaml load as
// boss presets, everything else as character presets.
func LoadDir(dir string) []error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []error{err}
	}
	var errs []error
	for _, e := range entries {
		if e.IsDir() || !isTuningFile(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if strings.HasPrefix(e.Name(), "boss") {
			errs = append(errs, LoadBossFile(path)...)
		} else {
			errs = append(errs, LoadCharacterFile(path)...)
		}
	}
	return errs
}

func isTuningFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".yaml" || ext == ".yml"
}
