// Package cmd wires the two tokenizer families into one CLI: `tokenize bpe`
// for byte-level BPE models and `tokenize wordpiece` for BERT-style
// vocabularies. Both subcommands share the line-in, ids-out batch shape.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewCLI builds the root tokenize command with both subcommands attached.
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "tokenize",
		Short:         "Encode text into token ids with a BPE or WordPiece model",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.AddCommand(
		newBPECmd(),
		newWordPieceCmd(),
	)

	return rootCmd
}
