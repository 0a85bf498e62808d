package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .clf.yaml config file",
	Long:  `Create a .clf.yaml configuration file in the current directory with an example component.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

const defaultConfig = `# clf configuration
# Docs: https://github.com/yacobolo/clf

# Class merger: tailwind | stylesheet | dedup
merger: tailwind

# Stylesheets for the stylesheet merger and for class checks in "clf check"
stylesheets: []
#  - "web/static/css/**/*.css"

check:
  strict: false
  output-format: issues    # issues | summary | json
  print-lines: true
  print-linter-name: true

components:
  button:
    base: "inline-flex items-center justify-center rounded-md font-medium"
    variants:
      intent:
        primary: "bg-blue-600 text-white hover:bg-blue-700"
        secondary: "bg-gray-100 text-gray-900 hover:bg-gray-200"
        ghost: "bg-transparent hover:bg-gray-100"
      size:
        sm: "h-8 px-3 text-sm"
        md: "h-10 px-4"
        lg: "h-11 px-8 text-lg"
    defaultVariants:
      intent: primary
      size: md
    responsive:
      md: "w-auto"
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
