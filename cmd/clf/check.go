package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/clf/internal/check"
)

// errIssuesFound makes the process exit 1 after check has printed its report.
var errIssuesFound = errors.New("check found issues")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check component configs for mistakes",
	Long: `Report defaults that match no option, empty variants and breakpoints,
classes that conflict within one fragment, and (with --stylesheets)
classes that no stylesheet defines.

Exits 1 when errors are found, or on any issue with --strict.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCheck(cmd.OutOrStdout())
	},
}

func init() {
	f := checkCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "issues", "Output format: issues|summary|json")
	f.Bool("print-lines", true, "Show config lines with issues")
	f.Bool("print-linter-name", true, "Show (clf) suffix on issues")
}

func runCheck(w io.Writer) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	sheet, err := loadSheet()
	if err != nil {
		return err
	}
	merger, err := buildMerger(sheet)
	if err != nil {
		return err
	}

	path := configPath()
	// #nosec G304 - path comes from the --config flag
	source, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read config: %w", err)
	}

	result := check.Run(reg, check.Options{
		Filename: path,
		Source:   source,
		Merger:   merger,
		Sheet:    sheet,
	})
	logger.Debug("check finished",
		"components", result.ComponentsChecked,
		"classes", result.ClassesChecked,
		"issues", len(result.Issues))

	if !getBool("quiet", false) {
		if err := writeCheckOutput(w, result); err != nil {
			return err
		}
	}

	// Default "soft gate": only errors fail; --strict fails on any issue
	if result.Errors() > 0 || (getBool("check::strict", false) && len(result.Issues) > 0) {
		return errIssuesFound
	}
	return nil
}

func writeCheckOutput(w io.Writer, result *check.Result) error {
	format, err := check.ParseOutputFormat(getString("check::output-format", "issues"))
	if err != nil {
		return err
	}
	return check.WriteOutput(w, result, format, check.ReportConfig{
		UseColors:        getBool("color", false),
		PrintIssuedLines: getBool("check::print-lines", true),
		PrintLinterName:  getBool("check::print-linter-name", true),
	})
}
