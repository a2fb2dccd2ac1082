//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	Issuer         string
	KeyID          string
	PrivateKeyPath string
	AscPath        string
	AllowWrites    bool
	Verbose        bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Issuer:         os.Getenv("ASC_ISSUER"),
		KeyID:          os.Getenv("ASC_KEY_ID"),
		PrivateKeyPath: os.Getenv("ASC_PRIVATE_KEY_PATH"),
		AscPath:        getAscPath(),
		AllowWrites:    os.Getenv("ASC_INTEGRATION_WRITES") == "true",
		Verbose:        os.Getenv("ASC_VERBOSE") == "true",
	}
}

// getAscPath determines the path to the asc binary.
func getAscPath() string {
	if path := os.Getenv("ASC_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../asc",
		"./asc",
		"../asc",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "asc"
}

// SkipIfMissingConfig skips the test when credentials or the binary are missing.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Issuer == "" || config.KeyID == "" || config.PrivateKeyPath == "" {
		t.Skip("ASC_ISSUER, ASC_KEY_ID or ASC_PRIVATE_KEY_PATH not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.AscPath); err != nil {
		t.Skipf("asc binary not found at %s, skipping integration test", config.AscPath)
	}
}

// SkipUnlessWritesAllowed skips tests that create or delete resources.
func (config *TestConfig) SkipUnlessWritesAllowed(t *testing.T) {
	t.Helper()

	if !config.AllowWrites {
		t.Skip("ASC_INTEGRATION_WRITES not set, skipping test that modifies the account")
	}
}

// CommandRunner runs asc commands with credentials taken from the environment.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes an asc command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.AscPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+runner.t.TempDir())

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.AscPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON executes an asc command with JSON output and decodes the result into target.
func (runner *CommandRunner) RunJSON(target interface{}, args ...string) error {
	stdout, stderr, err := runner.Run(append(args, "--output", "json")...)
	if err != nil {
		return fmt.Errorf("asc %s: %w: %s", strings.Join(args, " "), err, stderr)
	}

	if err := json.Unmarshal([]byte(stdout), target); err != nil {
		return fmt.Errorf("decoding output of asc %s: %w", strings.Join(args, " "), err)
	}

	return nil
}

// GenerateTestName creates a unique test resource name.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// CleanupBundleID attempts to delete a bundle ID created by a test.
func (runner *CommandRunner) CleanupBundleID(id string) {
	if id == "" {
		return
	}

	stdout, stderr, err := runner.Run("bundle-ids", "delete", id)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for bundle ID %s: %s\nStderr: %s", id, stdout, stderr)
	}
}

// AssertJSONOutput verifies command output is valid JSON.
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	if !json.Valid([]byte(strings.TrimSpace(output))) {
		t.Errorf("Output is not JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output looks like YAML.
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if strings.HasPrefix(output, "{") || strings.HasPrefix(output, "[") || !strings.Contains(output, ":") {
		t.Errorf("Output does not appear to be YAML: %s", output)
	}
}
