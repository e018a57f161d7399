package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/solvberg/subword/bpe"
)

func newBPECmd() *cobra.Command {
	bpeCmd := &cobra.Command{
		Use:   "bpe ASSET-PREFIX INPUT-PATH",
		Short: "Encode with a byte-level BPE model (<prefix>.merges/.bytes/.specials)",
		Args:  cobra.ExactArgs(2),
		RunE:  BPEHandler,
	}

	bpeCmd.Flags().Bool("verbose", false, "Render a position/id table per input line to stderr")
	bpeCmd.Flags().Bool("bos", false, "Prepend the BOS id to each line's output")
	bpeCmd.Flags().Bool("dump-merges", false, "Render the loaded merge table to stderr and exit")

	return bpeCmd
}

// BPEHandler loads the model behind args[0] and encodes every line of
// args[1], printing space-separated decimal ids, one output line per input
// line.
func BPEHandler(cmd *cobra.Command, args []string) error {
	tok, err := bpe.Load(args[0])
	if err != nil {
		return err
	}

	if dump, _ := cmd.Flags().GetBool("dump-merges"); dump {
		renderMergeTable(tok)
		return nil
	}

	lines, err := readInputLines(args[1])
	if err != nil {
		return err
	}

	addBOS, _ := cmd.Flags().GetBool("bos")
	ids := encodeLines(lines, func(line string) []int32 {
		var scratch bpe.Scratch
		return tok.EncodeInto(line, addBOS, nil, &scratch)
	})

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		fmt.Fprintf(os.Stderr, "tokenizer %s: %d merges loaded\n", tok.ID(), tok.NumMerges())
		for i, line := range ids {
			renderIDTable(lines[i], line)
		}
	}

	return writeIDs(cmd.OutOrStdout(), ids)
}

func renderMergeTable(tok *bpe.Tokenizer) {
	var data [][]string
	for _, rule := range tok.DumpMerges() {
		data = append(data, []string{
			strconv.Itoa(int(rule.Priority)),
			strconv.Itoa(int(rule.First)),
			strconv.Itoa(int(rule.Second)),
			strconv.Itoa(int(rule.Result)),
		})
	}

	table := tablewriter.NewWriter(os.Stderr)
	table.SetHeader([]string{"PRIORITY", "FIRST", "SECOND", "RESULT"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}

func renderIDTable(line string, ids []int32) {
	var data [][]string
	for i, id := range ids {
		data = append(data, []string{strconv.Itoa(i), strconv.Itoa(int(id))})
	}

	fmt.Fprintf(os.Stderr, "%q\n", line)
	table := tablewriter.NewWriter(os.Stderr)
	table.SetHeader([]string{"POS", "ID"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}
