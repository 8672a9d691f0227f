//go:build integration
// +build integration

package integration

import (
	"context"
	"os/exec"
	"testing"
)

func restartQuoteContainer(t *testing.T, ctx context.Context) {
	t.Helper()

	cmd := exec.CommandContext(ctx, "docker", "compose", "restart", "quote")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("docker compose restart quote failed: %v\n%s", err, string(out))
	}
}
