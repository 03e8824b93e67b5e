package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "tplcheck",
		Short:        "Batch-validate binary files against a parsing template",
		Long:         "tplcheck drives an external single-file parsing tool across a whole file corpus, classifies every invocation as OK, SUSPECT, or FAILED, and writes a consolidated report plus skip lists for incremental re-runs.",
		SilenceUsage: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newRunCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
