package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "clf",
	Short: "Resolve and check variant-driven component classes",
	Long: `clf computes the class string of a component from its variant
configuration and the options you pass, the same way the clf Go package
does at runtime. Components are declared in .clf.yaml (or .clf.toml).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Only log errors and skip the check report (resolve still prints)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".clf.yaml", "Config file path (.yaml, .yml, .json or .toml)")
	rootCmd.PersistentFlags().String("merger", "tailwind", "Class merger: tailwind|stylesheet|dedup")
	rootCmd.PersistentFlags().StringSlice("stylesheets", nil, "CSS file patterns for the stylesheet merger and class checks")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
