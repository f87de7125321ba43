// The finsight binary analyzes financial documents from the command line.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"finsight/pkg/core/extract"
	"finsight/pkg/core/pipeline"
	"finsight/pkg/core/report"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "finsight",
		Short: "Analyze financial documents (PDF and CSV/XLSX)",
		Long: `finsight extracts financial figures from statements, computes the
standard ratio set, and scores the company's performance.`,
		SilenceUsage: true,
	}
	root.AddCommand(newAnalyzeCmd(), newReportCmd())
	return root
}

func analyzeFile(path, fileType string) (*pipeline.AnalysisResult, error) {
	res := pipeline.NewAnalyzer().Analyze(path, fileType)
	if res.Status == pipeline.StatusError {
		return res, fmt.Errorf("%s: %s", res.ErrorType, res.ErrorMessage)
	}
	return res, nil
}

func newAnalyzeCmd() *cobra.Command {
	var fileType string

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Run the pipeline and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := analyzeFile(args[0], fileType)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&fileType, "type", "t", extract.FileTypeAuto,
		"file type: auto, pdf or csv")
	return cmd
}

func newReportCmd() *cobra.Command {
	var fileType string

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Run the pipeline and print a markdown report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := analyzeFile(args[0], fileType)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Markdown(res))
			return nil
		},
	}
	cmd.Flags().StringVarP(&fileType, "type", "t", extract.FileTypeAuto,
		"file type: auto, pdf or csv")
	return cmd
}
