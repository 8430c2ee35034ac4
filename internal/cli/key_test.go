package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/WinterJet2021/Cryptography-Nullity-Demonstration/hill"
)

// swapKeyFlags overrides the key-selection flag variables for one test
// and restores them afterwards.
func swapKeyFlags(t *testing.T, preset, key, file string) {
	t.Helper()
	oldPreset, oldKey, oldFile := presetName, keyText, keyFilePath
	presetName, keyText, keyFilePath = preset, key, file
	t.Cleanup(func() {
		presetName, keyText, keyFilePath = oldPreset, oldKey, oldFile
	})
}

// writeTempKey drops YAML into a temp dir and returns its path.
func writeTempKey(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "key.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadKeyFile(t *testing.T) {
	path := writeTempKey(t, "name: classroom\nrows:\n  - [2, 1]\n  - [3, 4]\n")

	k, err := loadKeyFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, k.Order())
	require.Equal(t, [][]float64{{2, 1}, {3, 4}}, k.Rows())
}

func TestLoadKeyFile_Errors(t *testing.T) {
	_, err := loadKeyFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "read key file")

	_, err = loadKeyFile(writeTempKey(t, "rows: ["))
	require.ErrorContains(t, err, "parse key file")

	// Ragged rows survive YAML but not matrix validation.
	_, err = loadKeyFile(writeTempKey(t, "rows:\n  - [2, 1]\n  - [3]\n"))
	require.ErrorIs(t, err, hill.ErrNotSquare)
}

func TestResolveKey_InlineWins(t *testing.T) {
	path := writeTempKey(t, "rows:\n  - [9, 9]\n  - [9, 9]\n")
	swapKeyFlags(t, string(hill.PresetSingular), "2,1;3,4", path)

	k, err := resolveKey()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 1}, {3, 4}}, k.Rows()) // not the file, not the preset
}

func TestResolveKey_FileBeatsPreset(t *testing.T) {
	path := writeTempKey(t, "rows:\n  - [2, 0]\n  - [0, 2]\n")
	swapKeyFlags(t, string(hill.PresetSingular), "", path)

	k, err := resolveKey()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 0}, {0, 2}}, k.Rows())
}

func TestResolveKey_PresetFallback(t *testing.T) {
	swapKeyFlags(t, string(hill.PresetSingular), "", "")

	k, err := resolveKey()
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {2, 4, 6}, {0, 1, 2}}, k.Rows())
}

func TestResolveKey_UnknownPreset(t *testing.T) {
	swapKeyFlags(t, "no-such-preset", "", "")

	_, err := resolveKey()
	require.ErrorIs(t, err, hill.ErrUnknownPreset)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    hill.CipherMode
		wantErr bool
	}{
		{"real", hill.Real, false},
		{"mod26", hill.Mod26, false},
		{"caesar", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parseMode(tt.in)
		if tt.wantErr {
			require.Error(t, err, "parseMode(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "parseMode(%q)", tt.in)
		require.Equal(t, tt.want, got)
	}
}

func TestParseAlphabet(t *testing.T) {
	tests := []struct {
		in      string
		want    hill.AlphabetMode
		wantErr bool
	}{
		{"spaced", hill.Spaced, false},
		{"stripped", hill.Stripped, false},
		{"ascii", 0, true},
	}

	for _, tt := range tests {
		got, err := parseAlphabet(tt.in)
		if tt.wantErr {
			require.Error(t, err, "parseAlphabet(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "parseAlphabet(%q)", tt.in)
		require.Equal(t, tt.want, got)
	}
}

func TestCipherOptions_AutoStripped(t *testing.T) {
	cmd := &cobra.Command{Use: "probe"}
	cmd.Flags().String("alphabet", "spaced", "")

	// Alphabet left at its default: mod26 flips it to stripped.
	opts, err := cipherOptions(cmd, "mod26", "spaced")
	require.NoError(t, err)
	require.Equal(t, hill.Stripped, opts.Alphabet)

	// Explicit choice is respected even when the cipher will reject it.
	require.NoError(t, cmd.Flags().Set("alphabet", "spaced"))
	opts, err = cipherOptions(cmd, "mod26", "spaced")
	require.NoError(t, err)
	require.Equal(t, hill.Spaced, opts.Alphabet)
}

func TestCipherOptions_BadFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "probe"}
	cmd.Flags().String("alphabet", "spaced", "")

	_, err := cipherOptions(cmd, "rot13", "spaced")
	require.Error(t, err)

	_, err = cipherOptions(cmd, "real", "unicode")
	require.Error(t, err)
}

func TestSplitInts(t *testing.T) {
	got, err := splitInts("")
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = splitInts("2,5,11")
	require.NoError(t, err)
	require.Equal(t, []int{2, 5, 11}, got)

	got, err = splitInts(" 2 , 5 ")
	require.NoError(t, err)
	require.Equal(t, []int{2, 5}, got)

	_, err = splitInts("2,x")
	require.Error(t, err)
}

func TestJoinInts(t *testing.T) {
	require.Equal(t, "2,5,11", joinInts([]int{2, 5, 11}))
	require.Equal(t, "", joinInts(nil))
}
