package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// readInputLines reads the batch of input strings, one per line, from path
// or from stdin when path is "-". When stdin is an interactive terminal a
// short hint goes to stderr so the user knows the process is waiting.
func readInputLines(path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "reading from stdin, press ctrl+d to finish")
		}
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// encodeLines fans the input batch out across a bounded worker pool. Each
// line is encoded by exactly one goroutine with its own scratch, so the
// shared tokenizer's read-only concurrency contract holds; results keep
// input order.
func encodeLines(lines []string, encode func(line string) []int32) [][]int32 {
	ids := make([][]int32, len(lines))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			ids[i] = encode(line)
			return nil
		})
	}
	g.Wait() //nolint:errcheck

	return ids
}

// writeIDs prints one line of space-separated decimal ids per input line.
func writeIDs(w io.Writer, ids [][]int32) error {
	bw := bufio.NewWriter(w)
	for _, line := range ids {
		for i, id := range line {
			if i > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.FormatInt(int64(id), 10)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
