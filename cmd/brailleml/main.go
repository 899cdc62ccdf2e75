package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NSoiffer/MathCAT-sub003/pkgs/backtranslate"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/braille"
)

// Build-time variables - can be set via ldflags
var (
	Version   string = "dev"
	BuildTime string = "unknown"
	GitCommit string = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options holds the flag values of one command tree.
type options struct {
	code         string
	format       string
	configFile   string
	inputFile    string
	displayBlock bool
	declaration  bool
	debug        bool
	ascii        bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "brailleml [flags] [braille]",
		Short: "Translate mathematical braille to MathML",
		Long: `brailleml back-translates Nemeth, UEB and CMU mathematical braille to
Presentation MathML. Input is taken from the arguments, from --file, or
from stdin. By default the braille code is detected automatically.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.inputFile, "file", "f", "", "Read braille from a file (- for stdin)")
	rootCmd.PersistentFlags().BoolVar(&opts.ascii, "ascii", false, "Treat input as dot numbers (e.g. 3456-2)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug output")

	rootCmd.Flags().StringVarP(&opts.code, "code", "c", "", "Braille code: auto, nemeth, ueb or cmu")
	rootCmd.Flags().StringVar(&opts.format, "format", "", "Output format: mathml, json or cbor")
	rootCmd.Flags().StringVar(&opts.configFile, "config", "", "Path to a JSON config file")
	rootCmd.Flags().BoolVar(&opts.displayBlock, "display-block", false, `Emit display="block" on the math element`)
	rootCmd.Flags().BoolVar(&opts.declaration, "declaration", false, "Emit an XML declaration")

	rootCmd.AddCommand(newDetectCmd(opts))
	rootCmd.AddCommand(newCodesCmd())
	rootCmd.AddCommand(newASCIICmd())
	rootCmd.AddCommand(newDotsCmd(opts))
	rootCmd.AddCommand(newValidateCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newDetectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "detect [braille]",
		Short: "Show the detected braille code and code switch segments",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, opts)
			if err != nil {
				return err
			}
			det := backtranslate.DetectCode(input)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Primary code: %s\n", det.PrimaryCode)
			fmt.Fprintf(out, "Code switching: %t\n", det.HasCodeSwitching)
			fmt.Fprintf(out, "Segments:\n")
			for _, seg := range det.Segments {
				fmt.Fprintf(out, "  [%d,%d) %-6s %s\n", seg.Start, seg.End, seg.Code, seg.Content)
			}
			return nil
		},
	}
}

func newCodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List the supported braille codes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, code := range braille.Codes {
				fmt.Fprintf(cmd.OutOrStdout(), "%-7s %-6s %s\n", code, code.Language(), code.Description())
			}
		},
	}
}

func newASCIICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ascii <dots>...",
		Short: "Convert dot numbers to Unicode braille",
		Long: `Convert dot-number notation to Unicode braille cells. Each cell is a run
of dot numbers 1-8 (or letters a-h); cells are separated by spaces or '-'.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), backtranslate.ASCIIToUnicodeBraille(strings.Join(args, " ")))
		},
	}
}

func newDotsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dots [braille]",
		Short: "Convert Unicode braille to dot numbers",
		Long: `Print each braille cell as its dot numbers, with '-' between adjacent
cells. A blank cell prints as 0. This is the inverse of the ascii command.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dotNotation(input))
			return nil
		},
	}
}

func dotNotation(s string) string {
	var b strings.Builder
	prevCell := false
	for _, r := range s {
		if !braille.IsCell(r) {
			b.WriteRune(r)
			prevCell = false
			continue
		}
		if prevCell {
			b.WriteByte('-')
		}
		dots := braille.Dots(r)
		if len(dots) == 0 {
			b.WriteByte('0')
		}
		for _, d := range dots {
			b.WriteByte(byte('0' + d))
		}
		prevCell = true
	}
	return b.String()
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [braille]",
		Short: "Check that input contains only braille cells and whitespace",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, opts)
			if err != nil {
				return err
			}
			for i, r := range []rune(input) {
				if !backtranslate.IsValidBraille(string(r)) {
					return fmt.Errorf("invalid character %q at position %d", r, i)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "valid braille (%d runes)\n", len([]rune(input)))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version, build time, and git commit information for brailleml.",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "brailleml %s\n", Version)
			fmt.Fprintf(out, "Built: %s\n", BuildTime)
			fmt.Fprintf(out, "Commit: %s\n", GitCommit)
		},
	}
}
