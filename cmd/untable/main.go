// Package main provides the command-line interface for untable.
// It extracts records from an HTML table read from a file or standard input
// and prints them as JSON or YAML.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrjoshuak/untable"
)

// OutputFormat represents the supported output formats for the extracted records.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// flags holds the command-line options shared by the extraction commands.
type flags struct {
	skip      int
	threshold float64
	deep      bool
	selector  string
	xpath     string
	unicode   bool
	output    string
	format    string
	compact   bool
	verbose   bool
}

func main() {
	env, err := loadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(env).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(env Env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "untable",
		Short: "Extract records from HTML tables",
		Long: `untable turns an HTML table into structured records.

"single" reads a table describing one entity as label/value cells,
"multi" reads a table whose first row holds the labels of every other row.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newExtractCmd("single", "Extract one entity from a label/value table", env),
		newExtractCmd("multi", "Extract one record per row", env),
		newVersionCmd(),
	)
	return rootCmd
}

func newExtractCmd(mode, short string, env Env) *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   mode + " [file|-]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return run(cmd, mode, input, f)
		},
	}

	cmd.Flags().IntVar(&f.skip, "skip", env.Skip, "Leading cells (single) or rows (multi) to ignore")
	cmd.Flags().Float64Var(&f.threshold, "threshold", env.Threshold, "Signature similarity above which a cell is a label")
	cmd.Flags().BoolVar(&f.deep, "deep", env.Deep, "Include descendant elements in cell signatures")
	cmd.Flags().StringVar(&f.selector, "selector", "", "CSS selector of the table (default: first table)")
	cmd.Flags().StringVar(&f.xpath, "xpath", "", "XPath expression of the table (default: first table)")
	cmd.Flags().BoolVar(&f.unicode, "unicode", false, "Apply NFKC normalization to cell text")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&f.format, "format", env.Format, "Output format: json or yaml")
	cmd.Flags().BoolVar(&f.compact, "compact", false, "Output compact JSON without indentation")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "Log classification details to stderr")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := untable.GetBuildInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (%s)\n", info.Name, info.Version, info.GoVersion)
		},
	}
}

func run(cmd *cobra.Command, mode, inputPath string, f *flags) error {
	format := OutputFormat(strings.ToLower(f.format))
	if format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid output format: %s (must be json or yaml)", f.format)
	}

	logger, err := newLogger(f.verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	var input io.Reader = cmd.InOrStdin()
	if inputPath != "-" {
		file, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer file.Close()
		input = file
	}

	ext := untable.New(
		untable.WithSkip(f.skip),
		untable.WithThreshold(f.threshold),
		untable.WithDeepSignature(f.deep),
		untable.WithTableSelector(f.selector),
		untable.WithTableXPath(f.xpath),
		untable.WithUnicodeNormalization(f.unicode),
		untable.WithLogger(logger),
	)

	var result interface{}
	switch mode {
	case "single":
		result, err = ext.SingleFromReader(input)
	default:
		result, err = ext.MultiFromReader(input)
	}
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	logger.Debug("extraction finished", zap.String("mode", mode), zap.String("input", inputPath))

	data, err := render(result, format, f.compact)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if f.output != "" {
		if err := os.WriteFile(f.output, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// newLogger returns a development logger when verbose, otherwise a
// production logger that only reports warnings. Both write to stderr.
func newLogger(verbose bool) (*zap.Logger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
