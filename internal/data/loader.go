// Package data loads definition files into the immutable item library.
// Files are parsed exactly once, at startup; combat code only ever sees
// the typed records.
package data

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/battle-ammo/internal/domain/items"
	"github.com/KirkDiggler/battle-ammo/internal/errors"
)

type definitionFile struct {
	Ammo    []rawDefinition `yaml:"ammo"`
	Weapons []rawDefinition `yaml:"weapons"`
	Skills  []rawDefinition `yaml:"skills"`
	Slots   map[string]int  `yaml:"slots"`
}

type rawDefinition struct {
	ID   int                    `yaml:"id"`
	Name string                 `yaml:"name"`
	Tags map[string]interface{} `yaml:"tags"`
}

// Load reads a YAML definition file and builds the library
func Load(path string) (*items.Library, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read definition file %s", path)
	}

	return Parse(raw)
}

// Parse builds the library from YAML definition data
func Parse(raw []byte) (*items.Library, error) {
	var file definitionFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeValidation, "failed to parse definition data")
	}

	cfg := &items.LibraryConfig{
		Slots: file.Slots,
	}

	for _, def := range file.Ammo {
		if def.ID <= 0 {
			return nil, errors.Newf(errors.CodeValidation, "ammo definition %q has no id", def.Name)
		}
		cfg.Ammo = append(cfg.Ammo, items.NewAmmoDefinition(def.ID, def.Name, items.Metadata(def.Tags)))
	}

	for _, def := range file.Weapons {
		if def.ID <= 0 {
			return nil, errors.Newf(errors.CodeValidation, "weapon definition %q has no id", def.Name)
		}
		cfg.Weapons = append(cfg.Weapons, items.NewWeaponDefinition(def.ID, def.Name, items.Metadata(def.Tags)))
	}

	for _, def := range file.Skills {
		if def.ID <= 0 {
			return nil, errors.Newf(errors.CodeValidation, "skill definition %q has no id", def.Name)
		}
		cfg.Skills = append(cfg.Skills, items.NewSkillDefinition(def.ID, def.Name, items.Metadata(def.Tags)))
	}

	return items.NewLibrary(cfg), nil
}
