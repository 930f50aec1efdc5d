package conditional_test

import (
	"strings"
	"testing"

	"github.com/specialistvlad/debtemplates/internal/conditional"
	"github.com/specialistvlad/debtemplates/internal/diag"
	"github.com/specialistvlad/debtemplates/internal/vars"
	"github.com/stretchr/testify/require"
)

func testTable() *vars.Table {
	return vars.New(map[string][]string{
		"ARCH64":      {"amd64", "arm64"},
		"ARCHES_NONE": {},
	})
}

func process(t *testing.T, p *conditional.Processor, input string) (string, error) {
	t.Helper()
	return p.Process("debian/libvirt-daemon.install.in", strings.NewReader(input))
}

func TestProcess_Filter(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"usr/bin/virsh",
		"[ARCH64] usr/lib/some-package",
		"[linux-any] usr/sbin/some-file",
		"[hurd-any] usr/sbin/hurd-only",
		"[ARCHES_NONE] never",
		"",
		"   indented/plain   ",
	}, "\n") + "\n"

	testCases := []struct {
		name     string
		arch     string
		os       string
		expected string
	}{
		{
			name:     "amd64 linux",
			arch:     "amd64",
			os:       "linux",
			expected: "usr/bin/virsh\nusr/lib/some-package\nusr/sbin/some-file\n\nindented/plain\n",
		},
		{
			name:     "i386 linux",
			arch:     "i386",
			os:       "linux",
			expected: "usr/bin/virsh\nusr/sbin/some-file\n\nindented/plain\n",
		},
		{
			name:     "arm64 hurd",
			arch:     "arm64",
			os:       "hurd",
			expected: "usr/bin/virsh\nusr/lib/some-package\nusr/sbin/hurd-only\n\nindented/plain\n",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := &conditional.Processor{Table: testTable(), Mode: conditional.Filter, Arch: tc.arch, OS: tc.os}
			out, err := process(t, p, input)
			require.NoError(t, err)
			require.Equal(t, tc.expected, out)
		})
	}
}

func TestProcess_AnySuffixIgnoresTable(t *testing.T) {
	t.Parallel()

	// "kfreebsd-any" is not a group, but -any conditions never consult the table.
	p := &conditional.Processor{Table: vars.New(nil), Arch: "amd64", OS: "linux"}
	out, err := process(t, p, "[kfreebsd-any] a\n[linux-any] b\n")
	require.NoError(t, err)
	require.Equal(t, "b\n", out)
}

func TestProcess_ConditionWhitespace(t *testing.T) {
	t.Parallel()

	p := &conditional.Processor{Table: testTable(), Arch: "arm64", OS: "linux"}
	out, err := process(t, p, "[ ARCH64 ]    spaced/payload  \n")
	require.NoError(t, err)
	require.Equal(t, "spaced/payload\n", out)
}

func TestProcess_PayloadMayContainBrackets(t *testing.T) {
	t.Parallel()

	p := &conditional.Processor{Table: testTable(), Arch: "amd64", OS: "linux"}
	out, err := process(t, p, "[ARCH64] foo [bar] baz\n")
	require.NoError(t, err)
	require.Equal(t, "foo [bar] baz\n", out)
}

func TestProcess_Strip(t *testing.T) {
	t.Parallel()

	input := "plain\n[ARCH64] some-package\n[NO_SUCH_GROUP] other\n[hurd-any] hurd-file\n"
	for _, arch := range []string{"amd64", "i386", ""} {
		p := &conditional.Processor{Table: testTable(), Mode: conditional.Strip, Arch: arch}
		out, err := process(t, p, input)
		require.NoError(t, err)
		require.Equal(t, "plain\nsome-package\nother\nhurd-file\n", out)
	}
}

func TestProcess_EmptyInput(t *testing.T) {
	t.Parallel()

	p := &conditional.Processor{Table: testTable(), Arch: "amd64", OS: "linux"}
	out, err := process(t, p, "")
	require.NoError(t, err)
	require.Equal(t, "", out)
}

func TestProcess_NoTrailingNewline(t *testing.T) {
	t.Parallel()

	p := &conditional.Processor{Table: testTable(), Arch: "amd64", OS: "linux"}
	out, err := process(t, p, "a\n[ARCH64] b")
	require.NoError(t, err)
	require.Equal(t, "a\nb\n", out)
}

func TestProcess_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mode     conditional.Mode
		input    string
		kind     error
		expected string
	}{
		{
			name:     "unterminated condition",
			input:    "ok\n[ARCH64 missing-bracket\n",
			kind:     diag.ErrInvalidSyntax,
			expected: "debian/libvirt-daemon.install.in:2: Invalid syntax",
		},
		{
			name:     "unterminated condition in strip mode",
			mode:     conditional.Strip,
			input:    "[ARCH64\n",
			kind:     diag.ErrInvalidSyntax,
			expected: "debian/libvirt-daemon.install.in:1: Invalid syntax",
		},
		{
			name:     "unknown group",
			input:    "a\nb\n[ARCH65] c\n",
			kind:     diag.ErrUnknownGroup,
			expected: "debian/libvirt-daemon.install.in:3: Unknown architecture group 'ARCH65'",
		},
		{
			name:     "wrapped group name is not a group",
			input:    "[${ARCH64}] c\n",
			kind:     diag.ErrUnknownGroup,
			expected: "debian/libvirt-daemon.install.in:1: Unknown architecture group '${ARCH64}'",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := &conditional.Processor{Table: testTable(), Mode: tc.mode, Arch: "amd64", OS: "linux"}
			_, err := process(t, p, tc.input)
			require.ErrorIs(t, err, tc.kind)
			require.EqualError(t, err, tc.expected)
		})
	}
}

func TestProcess_LongLine(t *testing.T) {
	t.Parallel()

	payload := strings.Repeat("x", 70000)
	p := &conditional.Processor{Table: testTable(), Arch: "amd64", OS: "linux"}
	out, err := process(t, p, "[ARCH64] "+payload+"\n"+strings.Repeat("y", 70000))
	require.NoError(t, err)
	require.Equal(t, payload+"\n"+strings.Repeat("y", 70000)+"\n", out)
}
