package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/recase-dev/recase/caseconv"
	"github.com/recase-dev/recase/internal/cli/ui"
	"github.com/recase-dev/recase/internal/config"
)

var (
	convertDiacritics bool
	convertLocale     string
	convertStrict     bool
	convertNumbers    bool
	convertAcronyms   bool
	convertPascal     bool
)

func init() {
	for _, cmd := range []*cobra.Command{kebabCmd, dotCmd, camelCmd} {
		cmd.Flags().BoolVar(&convertDiacritics, "strip-diacritics", false, "Strip combining diacritical marks (café -> cafe)")
		cmd.Flags().StringVar(&convertLocale, "locale", "", "BCP 47 tag governing case folding (e.g. tr)")
		cmd.Flags().BoolVar(&convertStrict, "strict", false, "Fail on invalid input instead of printing nothing")
		cmd.Flags().BoolVar(&convertNumbers, "numbers", true, "Keep pure-digit tokens in the output")
	}
	camelCmd.Flags().BoolVar(&convertAcronyms, "acronyms", false, "Keep all-uppercase tokens intact (XMLHttpRequest)")
	camelCmd.Flags().BoolVar(&convertPascal, "pascal", false, "Capitalize the first word too (PascalCase)")
}

var kebabCmd = &cobra.Command{
	Use:   "kebab [text...]",
	Short: "Convert text to kebab-case",
	Long:  "Convert the arguments (or stdin when none are given) to kebab-case",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args, caseconv.StyleKebab)
	},
}

var dotCmd = &cobra.Command{
	Use:   "dot [text...]",
	Short: "Convert text to dot.case",
	Long:  "Convert the arguments (or stdin when none are given) to dot.case",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args, caseconv.StyleDot)
	},
}

var camelCmd = &cobra.Command{
	Use:   "camel [text...]",
	Short: "Convert text to camelCase",
	Long:  "Convert the arguments (or stdin when none are given) to camelCase or PascalCase",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args, caseconv.StyleCamel)
	},
}

func runConvert(cmd *cobra.Command, args []string, style caseconv.Style) error {
	opts, err := buildOptions(cmd, style)
	if err != nil {
		return reportConvertError(err)
	}

	var input any
	if len(args) > 0 {
		input = args
	} else {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		input = strings.TrimRight(string(raw), "\n")
	}

	out, err := caseconv.Convert(input, style, opts)
	if err != nil {
		return reportConvertError(err)
	}

	fmt.Println(out)
	return nil
}

// buildOptions merges config-file defaults with command flags into an
// option bag and runs it through the validating constructor.
func buildOptions(cmd *cobra.Command, style caseconv.Style) (*caseconv.Options, error) {
	bag := map[string]any{}
	if cfg, err := config.Load(); err == nil {
		bag = cfg.Convert.OptionBag()
	}

	if cmd.Flags().Changed("strip-diacritics") {
		bag["normalizeDiacritics"] = convertDiacritics
	}
	if cmd.Flags().Changed("locale") {
		bag["locale"] = convertLocale
	}
	if cmd.Flags().Changed("numbers") {
		bag["preserveNumbers"] = convertNumbers
	}
	bag["throwOnInvalid"] = convertStrict
	if style == caseconv.StyleCamel {
		bag["preserveAcronyms"] = convertAcronyms
		bag["pascalCase"] = convertPascal
	}

	return caseconv.ParseOptions(bag)
}

// reportConvertError renders conversion errors with the CLI formatting and
// returns a silent error so cobra exits non-zero without double printing
func reportConvertError(err error) error {
	var invalidInput *caseconv.InvalidInputError
	var invalidOption *caseconv.InvalidOptionError

	opts := ui.ErrorOptions{Problem: err.Error()}
	switch {
	case errors.As(err, &invalidInput):
		opts.Context = "invalid input"
	case errors.As(err, &invalidOption):
		opts.Context = "invalid option"
		opts.HelpCommands = []string{"See supported flags: recase --help"}
	}

	ui.WriteError(os.Stderr, opts)
	return errSilent
}

// errSilent signals a failure that has already been reported to the user
var errSilent = errors.New("reported")
