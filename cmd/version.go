// =============================================================================
// Overdue Report Compiler - Version Command
// =============================================================================
//
// COMMAND USAGE:
//   overdue-compiler version
//
// OUTPUT:
//   Overdue Report Compiler 1.1.0
//   Commit:     3f2c9a1 (modified)
//   Go Version: go1.24.11
//
// Release builds stamp Version with:
//   go build -ldflags "-X github.com/ginjaninja78/overdue-compiler/cmd.Version=1.1.0"
//
// Without the stamp the module version from `go install ...@vX.Y.Z` is used.
// The commit comes from the VCS info the Go toolchain embeds in the binary.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is the release version, set at build time using ldflags.
var Version = ""

// versionCmd represents the 'version' command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Run: func(cmd *cobra.Command, args []string) {
		info, _ := debug.ReadBuildInfo()
		printVersion(cmd.OutOrStdout(), info)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// printVersion writes the version block. info may be nil when the binary
// carries no build information.
func printVersion(w io.Writer, info *debug.BuildInfo) {
	version, commit, goVersion := Version, "unknown", "unknown"
	modified := false

	if info != nil {
		goVersion = info.GoVersion
		if version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				commit = s.Value
				if len(commit) > 7 {
					commit = commit[:7]
				}
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}
	if version == "" {
		version = "dev"
	}
	if modified {
		commit += " (modified)"
	}

	fmt.Fprintf(w, "Overdue Report Compiler %s\n", version)
	fmt.Fprintf(w, "Commit:     %s\n", commit)
	fmt.Fprintf(w, "Go Version: %s\n", goVersion)
}
