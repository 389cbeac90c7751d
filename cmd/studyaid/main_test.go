package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phrazzld/studyaid/internal/testutils"
	"github.com/stretchr/testify/require"
)

// cliResult is the captured outcome of one invocation.
type cliResult struct {
	stdout string
	stderr string
	err    error
}

// writeConfig writes a config file pointing at baseURL and returns its path.
func writeConfig(t *testing.T, baseURL string, extra string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "studyaid.yaml")
	content := fmt.Sprintf("service:\n  base_url: %s\n  timeout: 5s\nlog:\n  level: debug\n%s", baseURL, extra)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// runCLI executes the root command against the fake service.
func runCLI(t *testing.T, fake *testutils.FakeStudyService, stdin string, args ...string) cliResult {
	t.Helper()
	return runWithConfig(t, writeConfig(t, fake.URL(), ""), stdin, args...)
}

func runWithConfig(t *testing.T, configPath, stdin string, args ...string) cliResult {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.ExecuteContext(context.Background())

	return cliResult{stdout: out.String(), stderr: errOut.String(), err: err}
}
