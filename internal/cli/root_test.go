package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command tree against a fresh config dir and returns
// stdout, stderr, and the execution error.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeConf(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resolv.conf")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestCheckValidFile(t *testing.T) {
	path := writeConf(t, "nameserver 8.8.8.8\nnameserver 2001:4860:4860::8888\nsearch example.com\n")

	stdout, _, err := execute(t, "", "check", "--output", "plain", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "OK (2 nameservers)")
}

func TestCheckInvalidFileReportsLine(t *testing.T) {
	path := writeConf(t, "nameserver 8.8.8.8\nbogus directive\n")

	stdout, _, err := execute(t, "", "check", "--output", "json", path)
	require.Error(t, err)

	var result struct {
		Valid bool   `json:"valid"`
		Error string `json:"error"`
		Line  *int   `json:"line"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.False(t, result.Valid)
	assert.Contains(t, result.Error, "directive is not recognized")
	require.NotNil(t, result.Line)
	assert.Equal(t, 1, *result.Line)
}

func TestCheckFromStdin(t *testing.T) {
	stdout, _, err := execute(t, "nameserver 1.1.1.1\n", "check", "--output", "plain", "--file", "-")
	require.NoError(t, err)
	assert.Contains(t, stdout, "stdin: OK (1 nameservers)")
}

func TestShowJSON(t *testing.T) {
	path := writeConf(t, "nameserver 8.8.8.8\ndomain example.com\noptions ndots:2 rotate\n")

	stdout, _, err := execute(t, "", "show", "--output", "json", path)
	require.NoError(t, err)

	var result struct {
		File   string `json:"file"`
		Config struct {
			Nameservers []string `json:"nameservers"`
			Domain      string   `json:"domain"`
			NDots       uint32   `json:"ndots"`
			Rotate      bool     `json:"rotate"`
		} `json:"config"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, path, result.File)
	assert.Equal(t, []string{"8.8.8.8"}, result.Config.Nameservers)
	assert.Equal(t, "example.com", result.Config.Domain)
	assert.Equal(t, uint32(2), result.Config.NDots)
	assert.True(t, result.Config.Rotate)
}

func TestNameserversPlain(t *testing.T) {
	path := writeConf(t, "nameserver 8.8.8.8\nnameserver 9.9.9.9\n")

	stdout, _, err := execute(t, "", "nameservers", "--output", "plain", path)
	require.NoError(t, err)
	assert.Equal(t, "8.8.8.8\n9.9.9.9\n", stdout)
}

func TestInvalidOutputFormat(t *testing.T) {
	path := writeConf(t, "nameserver 8.8.8.8\n")

	_, _, err := execute(t, "", "show", "--output", "yaml", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestResolveRejectsInvalidName(t *testing.T) {
	_, _, err := execute(t, "", "resolve", "bad name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid host name")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "resolvctl version")
}
