package e2e

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frenetic/tests/testutil"
)

func TestGetCommandTestModeE2E(t *testing.T) {
	root := testutil.RepoRoot(t)

	cmd := exec.Command("go", "run", "./cmd/frenetic", "get", "orders/1",
		"--namespace", "order",
		"--type", "shop.Order",
		"--embed", "line_item",
		"--env", "test",
		"--mock", "fixtures/mocks.yaml",
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	output := string(out)
	assert.True(t, strings.Contains(output, "#<shop.Order "), output)
	assert.Contains(t, output, `number="A-1001"`)
	assert.Contains(t, output, "#<shop.LineItem ")
	assert.Contains(t, output, "mock=true")
}
