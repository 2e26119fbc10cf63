package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tokensRaw bool

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the token stream of a kfg file",
	Long: `Prints one token per line as line:character-length, kind and text.

By default the filtered stream is shown: comments and whitespace
removed, strings reduced to quote, body and quote. --raw shows the
tokenizer output unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolVar(&tokensRaw, "raw", false, "show tokens before filtering")
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := readSource(args[0])
	if err != nil {
		return err
	}

	raw, filtered := app.engine.Tokens(src)
	if tokensRaw {
		fmt.Fprint(cmd.OutOrStdout(), app.printer.Tokens(raw))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), app.printer.Tokens(filtered))
	return nil
}
