package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coregx/spanscan"
	"github.com/coregx/spanscan/accel"
)

// readInput returns the haystack named by --file, or the --input text.
func readInput(input, file string) ([]byte, error) {
	if file == "" {
		return []byte(input), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func newIndexCmd(o *options) *cobra.Command {
	var (
		last, anyOf, seq bool
		input, file      string
	)

	cmd := &cobra.Command{
		Use:   "index <needle>...",
		Short: "Find needles in the input",
		Long: `Find each needle in the input and report its first occurrence.

With --any the needles are merged into one set of bytes and the first byte
from the set is reported. With --seq the needles form a set of subsequences
and the leftmost occurrence of any of them is reported. --last reports the
last occurrence instead.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			haystack, err := readInput(input, file)
			if err != nil {
				return err
			}
			o.log.Debug("Searching", "haystackLen", len(haystack), "needles", len(args))

			var rows []tableWritable
			switch {
			case anyOf:
				rows = append(rows, o.indexAny(haystack, args, last))
			case seq:
				r, err := o.indexSeqSet(haystack, args, last)
				if err != nil {
					return err
				}
				rows = append(rows, r)
			default:
				for _, needle := range args {
					rows = append(rows, o.indexOne(haystack, needle, last))
				}
			}
			return o.print(cmd.OutOrStdout(), rows...)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&last, "last", false, "Report the last occurrence")
	flags.BoolVar(&anyOf, "any", false, "Treat the needles as one set of bytes")
	flags.BoolVar(&seq, "seq", false, "Treat the needles as a set of subsequences")
	flags.StringVarP(&input, "input", "i", "", "Input text to search")
	flags.StringVarP(&file, "file", "f", "", "Read the input from a file")
	cmd.MarkFlagsMutuallyExclusive("any", "seq")
	cmd.MarkFlagsMutuallyExclusive("input", "file")
	return cmd
}

func (o *options) indexOne(haystack []byte, needle string, last bool) searchResult {
	r := searchResult{Op: "index", Needle: needle}
	n := []byte(needle)
	switch {
	case len(n) == 1 && last:
		r.Op, r.Index = "last-index", o.scanner.LastIndex(haystack, n[0])
	case len(n) == 1:
		r.Index = o.scanner.Index(haystack, n[0])
	case last:
		r.Op, r.Index = "last-index", o.scanner.LastIndexSeq(haystack, n)
	default:
		r.Index = o.scanner.IndexSeq(haystack, n)
	}
	r.End = end(r.Index, len(n))
	return r
}

func (o *options) indexAny(haystack []byte, needles []string, last bool) searchResult {
	set := []byte(strings.Join(needles, ""))
	r := searchResult{Op: "any", Needle: string(set)}
	if last {
		r.Op, r.Index = "last-any", o.scanner.LastIndexAny(haystack, set)
	} else {
		r.Index = o.scanner.IndexAny(haystack, set)
	}
	r.End = end(r.Index, 1)
	return r
}

func (o *options) indexSeqSet(haystack []byte, needles []string, last bool) (searchResult, error) {
	r := searchResult{Op: "seq", Needle: strings.Join(needles, ","), Index: spanscan.NotFound, End: spanscan.NotFound}
	if last {
		r.Op = "last-seq"
		for _, needle := range needles {
			if pos := o.scanner.LastIndexSeq(haystack, []byte(needle)); pos > r.Index {
				r.Index, r.End = pos, pos+len(needle)
			}
		}
		return r, nil
	}

	patterns := make([][]byte, len(needles))
	for i, needle := range needles {
		patterns[i] = []byte(needle)
	}
	set, err := spanscan.NewSeqSet(patterns)
	if err != nil {
		return r, err
	}
	r.Index, r.End = set.Find(haystack)
	return r, nil
}

func end(index, n int) int {
	if index == spanscan.NotFound {
		return spanscan.NotFound
	}
	return index + n
}

func newEqualCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "equal <a> <b>",
		Short: "Report whether two inputs are equal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eq := o.scanner.Equal([]byte(args[0]), []byte(args[1]))
			return o.print(cmd.OutOrStdout(), equalResult{A: args[0], B: args[1], Equal: eq})
		},
	}
}

func newCompareCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two inputs lexicographically",
		Long: `Compare two inputs byte by byte. The order is -1, 0 or 1; when one
input is a prefix of the other the shorter one orders first.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			order := o.scanner.Compare([]byte(args[0]), []byte(args[1]))
			return o.print(cmd.OutOrStdout(), compareResult{A: args[0], B: args[1], Order: order})
		},
	}
}

func newFillCmd(o *options) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "fill <byte>",
		Short: "Overwrite every byte of the input with one value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args[0]) != 1 {
				return fmt.Errorf("fill value %q must be a single byte", args[0])
			}
			buf := []byte(input)
			o.scanner.Fill(buf, args[0][0])
			return o.print(cmd.OutOrStdout(), fillResult{Value: string(buf), Length: len(buf)})
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "Input text to overwrite")
	return cmd
}

func newInfoCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show detected CPU features and the scanner configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := accel.Detect()
			config := o.scanner.Config()
			return o.print(cmd.OutOrStdout(),
				property{"arch", f.Arch},
				property{"word-size", strconv.Itoa(f.WordSize)},
				property{"avx2", strconv.FormatBool(f.AVX2)},
				property{"sse4.2", strconv.FormatBool(f.SSE42)},
				property{"asimd", strconv.FormatBool(f.ASIMD)},
				property{"accel-enabled", strconv.FormatBool(config.EnableAccel)},
				property{"accelerated", strconv.FormatBool(o.scanner.Accelerated())},
				property{"min-accel-len", strconv.Itoa(config.MinAccelLen)},
			)
		},
	}
}
