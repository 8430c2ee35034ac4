package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/WinterJet2021/Cryptography-Nullity-Demonstration/hill"
)

// keyFile is the YAML shape accepted by --key-file:
//
//	name: classroom-key
//	rows:
//	  - [2, 1]
//	  - [3, 4]
type keyFile struct {
	Name string      `yaml:"name"`
	Rows [][]float64 `yaml:"rows"`
}

// loadKeyFile reads and validates a YAML key file.
func loadKeyFile(path string) (*hill.KeyMatrix, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file: %w", err)
	}

	var kf keyFile
	if err := yaml.Unmarshal(raw, &kf); err != nil {
		return nil, fmt.Errorf("parse key file: %w", err)
	}

	k, err := hill.KeyFromRows(kf.Rows)
	if err != nil {
		return nil, fmt.Errorf("key file %s: %w", path, err)
	}

	return k, nil
}

// resolveKey turns the key-selection flags into a concrete matrix.
// Priority: --key beats --key-file beats --preset.
func resolveKey() (*hill.KeyMatrix, error) {
	if keyText != "" {
		return hill.ParseKey(keyText)
	}
	if keyFilePath != "" {
		return loadKeyFile(keyFilePath)
	}

	k, err := hill.PresetMatrix(hill.Preset(presetName))
	if err != nil {
		return nil, fmt.Errorf("%w (want %s or %s)",
			err, hill.PresetInvertible, hill.PresetSingular)
	}

	return k, nil
}
