package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/NSoiffer/MathCAT-sub003/pkgs/ast"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/backtranslate"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/braille"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/codeswitch"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/config"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/parser"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/result"
	"github.com/NSoiffer/MathCAT-sub003/pkgs/resultfmt"
)

var errTranslationFailed = errors.New("translation failed")

func runTranslate(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	input, err := readInput(cmd, args, opts)
	if err != nil {
		return err
	}

	translateOpts := []backtranslate.TranslateOpt{
		backtranslate.WithOutput(cfg.GeneratorOptions()),
		backtranslate.WithMaxDepth(cfg.MaxDepth),
	}

	var (
		code braille.Code
		res  result.ParseResult
	)
	if cfg.Auto {
		code = backtranslate.DetectCode(input).PrimaryCode
		res = backtranslate.TranslateAuto(input, translateOpts...)
	} else {
		if code, err = cfg.Code(); err != nil {
			return err
		}
		res = backtranslate.Translate(input, code, translateOpts...)
	}

	if opts.debug {
		printDebug(cmd.ErrOrStderr(), input, code, cfg.Auto)
	}

	if err := writeResult(cmd, cfg.Format, code, input, res, opts.debug); err != nil {
		return err
	}
	if !res.IsSuccess() {
		return errTranslationFailed
	}
	return nil
}

// resolveConfig starts from the defaults, applies --config, then applies
// any flags set on the command line.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configFile != "" {
		loaded, err := config.LoadFile(opts.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("code") {
		if strings.EqualFold(opts.code, "auto") {
			cfg.Auto = true
		} else {
			code, err := braille.ParseCode(opts.code)
			if err != nil {
				if s := suggestCode(opts.code); s != "" {
					return nil, fmt.Errorf("%w (did you mean %q?)", err, s)
				}
				return nil, err
			}
			cfg.Auto = false
			cfg.DefaultCode = code.String()
		}
	}
	if flags.Changed("format") {
		switch f := strings.ToLower(opts.format); f {
		case config.FormatMathML, config.FormatJSON, config.FormatCBOR:
			cfg.Format = f
		default:
			return nil, fmt.Errorf("unknown format %q (expected mathml, json or cbor)", opts.format)
		}
	}
	if flags.Changed("display-block") {
		cfg.DisplayBlock = opts.displayBlock
	}
	if flags.Changed("declaration") {
		cfg.IncludeDeclaration = opts.declaration
	}
	return cfg, nil
}

// suggestCode returns the code name closest to name, or "".
func suggestCode(name string) string {
	candidates := []string{"auto"}
	for _, code := range braille.Codes {
		candidates = append(candidates, code.String())
	}

	ranks := fuzzy.RankFindFold(name, candidates)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}
	for _, c := range candidates {
		if fuzzy.MatchFold(c, name) {
			return c
		}
	}
	return ""
}

// readInput returns the braille to work on: the arguments joined by
// spaces, else the --file contents, else stdin. Trailing newlines are
// dropped.
func readInput(cmd *cobra.Command, args []string, opts *options) (string, error) {
	var input string
	switch {
	case len(args) > 0:
		input = strings.Join(args, " ")
	case opts.inputFile != "" && opts.inputFile != "-":
		data, err := os.ReadFile(opts.inputFile)
		if err != nil {
			return "", fmt.Errorf("error reading file %s: %w", opts.inputFile, err)
		}
		input = string(data)
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		input = string(data)
	}
	input = strings.TrimRight(input, "\r\n")

	if opts.ascii {
		lines := strings.Split(input, "\n")
		for i, line := range lines {
			lines[i] = braille.FromASCII(line)
		}
		input = strings.Join(lines, "\n")
	}
	return input, nil
}

func writeResult(cmd *cobra.Command, format string, code braille.Code, input string, res result.ParseResult, debug bool) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	if format == config.FormatMathML || format == "" {
		for _, w := range res.Warnings {
			fmt.Fprintf(errOut, "warning: %s\n", w)
		}
		for _, e := range res.Errors {
			fmt.Fprintf(errOut, "error: %s\n", e.Error())
		}
		if res.HasMathML() {
			fmt.Fprintln(out, res.MathML)
		}
		return nil
	}

	f, err := resultfmt.ParseFormat(format)
	if err != nil {
		return err
	}
	hash, err := resultfmt.Write(out, resultfmt.FromResult(code, input, res), f)
	if err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	if debug {
		fmt.Fprintf(errOut, "[debug] envelope blake2b-256: %s\n", hex.EncodeToString(hash[:]))
	}
	return nil
}

func printDebug(w io.Writer, input string, code braille.Code, auto bool) {
	if auto {
		_, trace := codeswitch.ParseTrace(input, codeswitch.WithDebug())
		for _, e := range trace.Events {
			fmt.Fprintf(w, "[debug] %s pos=%d %s\n", e.Event, e.Position, e.Context)
		}
		code = trace.Detection.PrimaryCode
	}

	tree := parser.ParseTree(code, codeswitch.StripIndicators(input), parser.WithDebugPaths())
	depth := 0
	if tree.Root != nil {
		depth = ast.Depth(tree.Root)
	}
	fmt.Fprintf(w, "[debug] %s tokens=%d tree=%s depth=%d\n", code, len(tree.Tokens), tree, depth)
	for _, e := range tree.DebugEvents {
		fmt.Fprintf(w, "[debug] %s token=%d %s\n", e.Event, e.TokenPos, e.Context)
	}
}
