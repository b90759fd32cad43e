package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanbanx/internal/app"
	kanbancli "github.com/thenoetrevino/kanbanx/internal/cli"
	"github.com/thenoetrevino/kanbanx/internal/testutil"
)

// ExecuteCLICommand executes a CLI command with a test app instance
// This properly injects the app context so commands can access the test database
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	// Set command args
	cmd.SetArgs(args)

	// GetCLIFromContext picks the app up from here instead of opening the real database
	ctxWithApp := kanbancli.WithApp(ctx, testApp)
	cmd.SetContext(ctxWithApp)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	// Capture output and execute
	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithApp)
	})

	return output, executeErr
}
