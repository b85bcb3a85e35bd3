// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package menu

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/mealslice/mealslice/pkg/types"
)

// MenuFile is the on-disk representation of a fetched menu run. The --save
// flag writes one so a day's menus can be kept or diffed without
// re-querying the API.
type MenuFile struct {
	District string               `yaml:"district"`
	School   string               `yaml:"school"`
	Entrees  bool                 `yaml:"entrees_only,omitempty"`
	Fetched  time.Time            `yaml:"fetched"`
	Menus    []types.ResolvedMenu `yaml:"menus"`
}

// WriteMenuFile saves the resolved menus to a YAML file.
func WriteMenuFile(path, district, school string, entreesOnly bool, menus []types.ResolvedMenu) error {
	mf := MenuFile{
		District: district,
		School:   school,
		Entrees:  entreesOnly,
		Fetched:  time.Now().UTC(),
		Menus:    menus,
	}

	data, err := yaml.Marshal(&mf)
	if err != nil {
		return fmt.Errorf("marshalling menu file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing menu file %s: %w", path, err)
	}
	return nil
}

// ReadMenuFile loads a previously saved menu file.
func ReadMenuFile(path string) (MenuFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MenuFile{}, fmt.Errorf("reading menu file %s: %w", path, err)
	}

	var mf MenuFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return MenuFile{}, fmt.Errorf("parsing menu file %s: %w", path, err)
	}
	return mf, nil
}
