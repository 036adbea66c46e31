package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

const appName = "ldpcgen"

var (
	version = "dev" // semantic version, injected via ldflags
	commit  string  // git commit SHA
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// NewRootCommand assembles the command tree. Output goes to the command's
// Out writer, logs to its Err writer; both default to the process streams.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "ldpcgen generates LDPC parity-check matrices",
		Long:          `ldpcgen builds sparse parity-check matrices (Tanner graphs) for LDPC codes using regular constructions or protograph lifting.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\n", appName, version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRegularCmd())
	root.AddCommand(newProtographCmd())

	return root
}

// Execute runs the CLI with ctx and returns the first command error.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
