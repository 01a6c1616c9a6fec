package e2e

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runLedgerline(t, binaryPath, home, "slides", "validate")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "ok: 41 slides")

	exported := filepath.Join(home, "story.toml")
	_, stderr, err = runLedgerline(t, binaryPath, home, "slides", "export", exported)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runLedgerline(t, binaryPath, home,
		"replay", "--json",
		"--steps", "1,c,c,c,2,d,c,c,c,c,c,c,3",
	)
	require.NoError(t, err, "stderr: %s", stderr)

	var snapshot struct {
		SlideID string  `json:"slide_id"`
		Balance float64 `json:"balance"`
		Credit  struct {
			Score int `json:"score"`
		} `json:"credit"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &snapshot))
	assert.Equal(t, "after_saving_decision", snapshot.SlideID)
	assert.Equal(t, 5700.0, snapshot.Balance)
	assert.Equal(t, 695, snapshot.Credit.Score)

	logData, err := os.ReadFile(filepath.Join(home, ".ledgerline", "ledgerline.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), `"sessionID"`)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "ledgerline-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ledgerline")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build ledgerline binary: %s", string(output))
	return binaryPath
}

func runLedgerline(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "LEDGERLINE_CONTENT_PATH=")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
