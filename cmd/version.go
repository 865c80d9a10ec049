package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the docgen version, build date, git commit (if available), Go runtime
and platform. The root command also accepts --version and -v.`,
	Run: func(cmd *cobra.Command, args []string) {
		writeVersionInfo(cmd.OutOrStdout())
	},
}

// versionInfo holds the build-time version information
var (
	// These variables are set at build time using -ldflags
	version   = "dev"     // Semantic version (e.g., "v1.0.0")
	buildDate = "unknown" // Build timestamp
	gitCommit = ""        // Git commit hash
	gitTag    = ""        // Git tag (if building from tag)
	goVersion = runtime.Version()
)

func init() {
	rootCmd.AddCommand(versionCmd)

	// Cobra registers --version (and -v) on the root command when Version is set.
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("docgen version {{.Version}}\n")
}

// writeVersionInfo prints comprehensive version information
func writeVersionInfo(w io.Writer) {
	fmt.Fprintf(w, "docgen version %s\n", version)

	if buildDate != "unknown" {
		fmt.Fprintf(w, "Build date: %s\n", buildDate)
	}

	if gitCommit != "" {
		fmt.Fprintf(w, "Git commit: %s\n", gitCommit)
		if gitTag != "" && gitTag != version {
			fmt.Fprintf(w, "Git tag: %s\n", gitTag)
		}
	}

	fmt.Fprintf(w, "Go version: %s\n", goVersion)

	if info, ok := debug.ReadBuildInfo(); ok {
		fmt.Fprintf(w, "Module: %s\n", info.Main.Path)
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			fmt.Fprintf(w, "Module version: %s\n", info.Main.Version)
		}
	}

	fmt.Fprintf(w, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
