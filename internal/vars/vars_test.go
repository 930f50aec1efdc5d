package vars_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/debtemplates/internal/diag"
	"github.com/specialistvlad/debtemplates/internal/vars"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	input := `# Architecture groups
ARCHES_ALL = amd64 arm64 i386

ARCHES_NONE =
  ARCHES_QEMU = amd64 arm64
   # indented comment
`
	table, err := vars.Parse("arches.mk", strings.NewReader(input))
	require.NoError(t, err)

	require.Equal(t, 3, table.Len())
	require.Equal(t, []string{"ARCHES_ALL", "ARCHES_NONE", "ARCHES_QEMU"}, table.Names())

	got := map[string][]string{}
	for _, name := range table.Names() {
		tokens, ok := table.Lookup(name)
		require.True(t, ok)
		got[name] = tokens
	}
	want := map[string][]string{
		"ARCHES_ALL":  {"amd64", "arm64", "i386"},
		"ARCHES_NONE": {},
		"ARCHES_QEMU": {"amd64", "arm64"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Redefinition(t *testing.T) {
	t.Parallel()

	table, err := vars.Parse("arches.mk", strings.NewReader("A = x\nB = y\nA = z w\n"))
	require.NoError(t, err)

	tokens, _ := table.Lookup("A")
	require.Equal(t, []string{"z", "w"}, tokens)
	require.Equal(t, []string{"A", "B"}, table.Names())
}

func TestParse_RepeatedSpacesYieldEmptyTokens(t *testing.T) {
	t.Parallel()

	table, err := vars.Parse("arches.mk", strings.NewReader("A = x  y\n"))
	require.NoError(t, err)

	tokens, _ := table.Lookup("A")
	require.Equal(t, []string{"x", "", "y"}, tokens)
	joined, _ := table.Joined("A")
	require.Equal(t, "x  y", joined)
}

func TestParse_InvalidSyntax(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input string
		line  int
	}{
		{name: "single field", input: "FOO\n", line: 1},
		{name: "missing equals", input: "# c\nFOO bar baz\n", line: 2},
		{name: "equals not separated", input: "FOO=bar\n", line: 1},
		{name: "colon equals", input: "\n\nFOO := bar\n", line: 3},
		{name: "tab separated", input: "FOO\t= bar\n", line: 1},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := vars.Parse("debian/arches.mk", strings.NewReader(tc.input))
			require.Error(t, err)
			require.True(t, errors.Is(err, diag.ErrInvalidSyntax))

			var de *diag.Error
			require.ErrorAs(t, err, &de)
			require.Equal(t, tc.line, de.Line)
			require.Equal(t, fmt.Sprintf("debian/arches.mk:%d: Invalid syntax", tc.line), err.Error())
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "arches.mk")
	require.NoError(t, os.WriteFile(path, []byte("ARCH64 = amd64 arm64\n"), 0o644))

	table, err := vars.Load(path)
	require.NoError(t, err)
	require.True(t, table.Has("ARCH64"))
	require.True(t, table.Contains("ARCH64", "arm64"))
	require.False(t, table.Contains("ARCH64", "i386"))
	require.False(t, table.Contains("MISSING", "amd64"))
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := vars.Load(filepath.Join(t.TempDir(), "nope.mk"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLookup_ReturnsCopy(t *testing.T) {
	t.Parallel()

	table := vars.New(map[string][]string{"A": {"x", "y"}})
	tokens, _ := table.Lookup("A")
	tokens[0] = "mutated"

	again, _ := table.Lookup("A")
	require.Equal(t, []string{"x", "y"}, again)
}

func TestPlaceholder(t *testing.T) {
	t.Parallel()
	require.Equal(t, "${FOO}", vars.Placeholder("FOO"))
}

func TestParse_LongLine(t *testing.T) {
	t.Parallel()

	token := strings.Repeat("x", 70000)
	table, err := vars.Parse("arches.mk", strings.NewReader("A = "+token+" amd64\nB = i386\n"))
	require.NoError(t, err)

	tokens, _ := table.Lookup("A")
	require.Equal(t, []string{token, "amd64"}, tokens)
	require.True(t, table.Has("B"))
}
