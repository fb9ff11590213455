package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes a fresh root command with the given stdin and args.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(catalogEnv, "")
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "park.yaml")
	body := "profiles:\n  teen: {age: [12, 17], weight: [35, 90], height: [130, 190]}\n" +
		"attractions:\n  - {name: Wave Rider, profile: teen}\n  - {name: Kiddie Slide, profile: children}\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestCheck_Allowed(t *testing.T) {
	out, _, err := run(t, "", "check", "Kiddie", "Slide", "--name", "Ana", "--age", "10", "--weight", "30", "--height", "100")
	require.NoError(t, err)
	assert.Equal(t, 0, ExitCode(err))
	assert.Equal(t, "✓ Ana may ride Kiddie Slide (children)\n", out)
}

func TestCheck_DeniedExitsOne(t *testing.T) {
	out, _, err := run(t, "", "check", "Kiddie Slide", "--name", "Ben", "--age", "15", "--weight", "30", "--height", "100")
	require.Error(t, err)
	assert.True(t, IsVerdict(err))
	assert.Equal(t, 1, ExitCode(err))
	assert.Contains(t, out, "✗ Ben may not ride Kiddie Slide (children)")
	assert.Contains(t, out, "age 15 not in 4–14")
}

func TestCheck_AdultWeight(t *testing.T) {
	out, _, err := run(t, "", "check", "Free Fall", "--age", "30", "--weight", "200", "--height", "180")
	assert.Equal(t, 1, ExitCode(err))
	assert.Contains(t, out, "weight 200 not in 50–120")
}

func TestCheck_UnknownAttractionExitsTwo(t *testing.T) {
	_, _, err := run(t, "", "check", "Haunted House", "--age", "30", "--weight", "80", "--height", "180")
	require.Error(t, err)
	assert.False(t, IsVerdict(err))
	assert.Equal(t, 2, ExitCode(err))
	assert.Contains(t, err.Error(), "unknown attraction")
}

func TestCheck_MissingFlag(t *testing.T) {
	_, _, err := run(t, "", "check", "Kiddie Slide", "--age", "10")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestCheck_CatalogFlagAndEnv(t *testing.T) {
	path := writeCatalog(t)

	out, _, err := run(t, "", "--catalog", path, "check", "wave rider", "--age", "15", "--weight", "60", "--height", "160")
	require.NoError(t, err)
	assert.Contains(t, out, "(teen)")

	root := newRootCmd()
	t.Setenv(catalogEnv, path)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--no-color", "check", "Wave Rider", "--age", "15", "--weight", "60", "--height", "160"})
	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "may ride Wave Rider")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"in range", []string{"children", "age", "10"}, 0, "✓ age=10 fits children (4–14)"},
		{"range error", []string{"children", "age", "200"}, 1, "range error: value out of range (children 4–14)"},
		{"type error", []string{"adult", "age", "ten"}, 1, `✗ age "ten": type error: value must be an integer`},
		{"case-insensitive", []string{"Adult", "Height", "220"}, 0, "✓ height=220 fits adult"},
		{"overflowing integer", []string{"children", "age", "99999999999999999999"}, 1, "✗ age 99999999999999999999: range error: value out of range"},
		{"overflowing negative", []string{"adult", "weight", "-99999999999999999999"}, 1, "range error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, "", append([]string{"validate"}, tt.args...)...)
			assert.Equal(t, tt.code, ExitCode(err))
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestValidate_UnknownProfileOrMeasure(t *testing.T) {
	_, _, err := run(t, "", "validate", "senior", "age", "70")
	assert.Equal(t, 2, ExitCode(err))
	assert.Contains(t, err.Error(), `unknown profile "senior"`)

	_, _, err = run(t, "", "validate", "adult", "shoe", "42")
	assert.Equal(t, 2, ExitCode(err))
	assert.Contains(t, err.Error(), `unknown measure "shoe"`)
}

func TestValidate_CustomProfile(t *testing.T) {
	path := writeCatalog(t)
	out, _, err := run(t, "", "--catalog", path, "validate", "teen", "age", "18")
	assert.Equal(t, 1, ExitCode(err))
	assert.Contains(t, out, "(teen 12–17)")
}

func TestProfiles(t *testing.T) {
	out, _, err := run(t, "", "profiles")
	require.NoError(t, err)
	assert.Contains(t, out, "children")
	assert.Contains(t, out, "age 4–14")
	assert.Contains(t, out, "height 120–220")
}

func TestAttractions(t *testing.T) {
	path := writeCatalog(t)
	out, _, err := run(t, "", "--catalog", path, "attractions")
	require.NoError(t, err)
	assert.Contains(t, out, "Attractions (2)")
	assert.Less(t, strings.Index(out, "Kiddie Slide"), strings.Index(out, "Wave Rider"))
}

func TestConfig(t *testing.T) {
	out, _, err := run(t, "", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog:      embedded:v1")
}

func TestGate_JSONLines(t *testing.T) {
	in := `{"attraction":"Kiddie Slide","visitor":{"name":"Ana","age":10,"weight":30,"height":100}}` + "\n" +
		`{"attraction":"Free Fall","visitor":{"name":"Di","age":40,"weight":80,"height":170}}` + "\n"
	out, _, err := run(t, in, "gate")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var resp struct {
			Allowed bool `json:"allowed"`
		}
		require.NoError(t, json.Unmarshal([]byte(line), &resp))
		assert.True(t, resp.Allowed)
	}
}

func TestGate_WatchNeedsCatalog(t *testing.T) {
	_, _, err := run(t, "", "gate", "--watch")
	require.Error(t, err)
	assert.Equal(t, 2, ExitCode(err))
}

func TestResolveColor(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, resolveColor("always", true, &buf))
	assert.True(t, resolveColor("always", false, &buf))
	assert.False(t, resolveColor("never", false, &buf))
	assert.False(t, resolveColor("auto", false, &buf), "a buffer is not a terminal")
}

func TestPrinter_Color(t *testing.T) {
	p := &printer{color: true}
	assert.Equal(t, colorRed+"x"+colorReset, p.paint(colorRed, "x"))
	p.color = false
	assert.Equal(t, "x", p.paint(colorRed, "x"))
}
