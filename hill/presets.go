package hill

import "fmt"

// Preset names a built-in demonstration key.
type Preset string

const (
	// PresetInvertible is the well-behaved 3×3 demo key: det = 7, coprime
	// with 26, so both cipher modes can undo it.
	PresetInvertible Preset = "invertible-demo"

	// PresetSingular is the broken 3×3 demo key: its second row is twice
	// its first, so det = 0 and one dimension of every message collapses.
	PresetSingular Preset = "singular-demo"
)

// presetRows holds the entries of the built-in keys.
var presetRows = map[Preset][][]float64{
	PresetInvertible: {{2, 1, 1}, {1, 2, 0}, {0, 1, 2}},
	PresetSingular:   {{1, 2, 3}, {2, 4, 6}, {0, 1, 2}},
}

// PresetMatrix returns a fresh KeyMatrix for the named preset. Unknown
// names yield ErrUnknownPreset.
func PresetMatrix(p Preset) (*KeyMatrix, error) {
	rows, ok := presetRows[p]
	if !ok {
		return nil, fmt.Errorf("%q: %w", p, ErrUnknownPreset)
	}

	return KeyFromRows(rows)
}

// Presets lists the built-in preset names in stable order.
func Presets() []Preset {
	return []Preset{PresetInvertible, PresetSingular}
}
