package cmd

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/solvberg/subword/wordpiece"
)

func newWordPieceCmd() *cobra.Command {
	wpCmd := &cobra.Command{
		Use:   "wordpiece VOCAB-PATH INPUT-PATH",
		Short: "Encode with a WordPiece vocabulary",
		Args:  cobra.ExactArgs(2),
		RunE:  WordPieceHandler,
	}

	wpCmd.Flags().Bool("verbose", false, "Render an id/piece table per input line to stderr")
	wpCmd.Flags().Bool("no-special-tokens", false, "Don't wrap output in [CLS] ... [SEP]")

	return wpCmd
}

// WordPieceHandler loads the vocabulary at args[0] and encodes every line
// of args[1], printing space-separated decimal ids, one output line per
// input line.
func WordPieceHandler(cmd *cobra.Command, args []string) error {
	tok, err := wordpiece.Load(args[0])
	if err != nil {
		return err
	}
	if noSpecial, _ := cmd.Flags().GetBool("no-special-tokens"); noSpecial {
		tok.AddSpecialTokens = false
	}

	lines, err := readInputLines(args[1])
	if err != nil {
		return err
	}

	ids := encodeLines(lines, tok.EncodeIDs)

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		for i, line := range ids {
			renderPieceTable(tok, lines[i], line)
		}
	}

	return writeIDs(cmd.OutOrStdout(), ids)
}

func renderPieceTable(tok *wordpiece.Tokenizer, line string, ids []int32) {
	vocab := tok.Vocabulary()

	var data [][]string
	for _, id := range ids {
		piece := ""
		if int(id) < len(vocab.Pieces) {
			piece = vocab.Pieces[id]
			if !vocab.IsPrefix[id] {
				piece = "##" + piece
			}
		}
		data = append(data, []string{strconv.Itoa(int(id)), piece})
	}

	os.Stderr.WriteString(strconv.Quote(line) + "\n")
	table := tablewriter.NewWriter(os.Stderr)
	table.SetHeader([]string{"ID", "PIECE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}
