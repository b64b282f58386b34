package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/utkarsh5026/vcsgraph/pkg/config"
)

// testHistory is a merge of two branches whose root has a parent outside
// the log:
//
//	aaaa111 (HEAD, main)  -> bbbb222, cccc333
//	bbbb222               -> dddd444
//	cccc333 (feature)     -> dddd444
//	dddd444               -> eeee555 (not loaded)
const testHistory = "aaaa111\t1700000300\tbbbb222 cccc333\tHEAD -> main\n" +
	"bbbb222\t1700000200\tdddd444\n" +
	"cccc333\t1700000100\tdddd444\tfeature\n" +
	"dddd444\t1700000000\teeee555\n"

func writeHistory(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "history.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))

	missingConfig := filepath.Join(t.TempDir(), config.DefaultFileName)
	cmd.SetArgs(append(args, "--no-color", "--config", missingConfig))

	err := cmd.Execute()
	return out.String(), err
}
