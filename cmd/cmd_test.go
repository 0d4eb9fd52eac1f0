package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RULEBOT_LOG_LEVEL", "error")
	require.NoError(t, classifyCmd.Flags().Set("output", "text"))
	require.NoError(t, classifyCmd.Flags().Set("file", ""))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		// nil makes cobra fall back to os.Args.
		args = []string{}
	}
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestClassifyCommand_Text(t *testing.T) {
	out, err := runCLI(t, "", "classify", "my", "printer", "wont", "print")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "Printer Not Printing – Quick Checklist", lines[0])
	assert.Equal(t, `[printer via "printer"]`, lines[1])
	assert.Contains(t, out, "- Clear the print queue and try again.\n")
	assert.Contains(t, out, "Tip: If you share the printer model and OS, I can give exact steps.\n")
}

func TestClassifyCommand_JSON(t *testing.T) {
	out, err := runCLI(t, "", "classify", "-o", "json", "BSOD", "on", "boot")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "crash", got["category"])
	assert.Equal(t, "bsod", got["keyword"])
	assert.Equal(t, "Crash / BSOD – Quick Checklist", got["title"])
	assert.True(t, strings.HasPrefix(got["reply"].(string), "Crash / BSOD – Quick Checklist\n\n- "))
}

func TestClassifyCommand_Stdin(t *testing.T) {
	out, err := runCLI(t, "hi there\n\n   \nrandom gibberish xyz\n", "classify", "--output", "json")
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(out))
	var titles []string
	for dec.More() {
		var r map[string]any
		require.NoError(t, dec.Decode(&r))
		titles = append(titles, r["title"].(string))
	}
	assert.Equal(t, []string{"Hi! 👋", "Tell me a bit more"}, titles)
}

func TestClassifyCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickets.txt")
	require.NoError(t, os.WriteFile(path, []byte("vpn keeps dropping\n\nforgot my password\n"), 0o600))

	out, err := runCLI(t, "", "classify", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "VPN Issue – Quick Checklist\n")
	assert.Contains(t, out, "Login / Password – Quick Checklist\n")
	assert.Less(t, strings.Index(out, "VPN Issue"), strings.Index(out, "Login / Password"))

	_, err = runCLI(t, "", "classify", "--file", path, "wifi")
	assert.Error(t, err)
}

func TestClassifyCommand_BlankArg(t *testing.T) {
	_, err := runCLI(t, "", "classify", "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message is required")
}

func TestClassifyCommand_BadOutput(t *testing.T) {
	_, err := runCLI(t, "", "classify", "-o", "yaml", "wifi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestRulesCommand(t *testing.T) {
	out, err := runCLI(t, "", "rules")
	require.NoError(t, err)

	for _, name := range []string{"greeting", "network", "vpn", "login", "printer", "slow_pc", "crash"} {
		assert.Contains(t, out, name)
	}
	assert.Less(t, strings.Index(out, "greeting"), strings.Index(out, "crash"))
}

func TestRootCommand_PrintsHelp(t *testing.T) {
	out, err := runCLI(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "classify")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "rulebot dev\n", out)
}

func TestGetAppFromContext_Missing(t *testing.T) {
	_, err := GetAppFromContext(context.Background())
	assert.Error(t, err)
}
