package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"

	"github.com/bnema/orbit/internal/cli/styles"
	"github.com/bnema/orbit/internal/infrastructure/config"
)

var (
	versionShort  bool
	versionOutput string
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	Long: `Display version, build info, repository URL, and contributors.

With --output json|yaml or --short, print machine-readable version data.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print just the version number")
	versionCmd.Flags().StringVarP(&versionOutput, "output", "o", "", "output format, one of 'yaml' or 'json'")
}

func runVersion(_ *cobra.Command, _ []string) error {
	if versionShort || versionOutput != "" {
		output := versionOutput
		if output == "" {
			output = "json"
		}
		fmt.Print(goversion.FuncWithOutput(versionShort, buildInfo.Version, buildInfo.Commit, buildInfo.BuildDate, output))
		return nil
	}

	theme := styles.NewTheme(config.DefaultConfig())
	fmt.Println(styles.NewAboutRenderer(theme).Render(buildInfo))
	return nil
}
