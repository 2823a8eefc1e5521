package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/liggitt/tabwriter"
	"github.com/spf13/pflag"
	"go.yaml.in/yaml/v3"
)

type outputFormat string

const (
	outputText outputFormat = "text"
	outputYAML outputFormat = "yaml"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Type() string { return "format" }

func (f *outputFormat) Set(v string) error {
	switch outputFormat(v) {
	case outputText, outputYAML:
		*f = outputFormat(v)
		return nil
	}
	return fmt.Errorf("must be %q or %q", outputText, outputYAML)
}

// tableWritable is a result that can be rendered as a table row.
type tableWritable interface {
	TableHeader() []string
	TableRow() []string
}

// print writes rows as a table or as a YAML sequence. All rows must share a
// header.
func (o *options) print(w io.Writer, rows ...tableWritable) error {
	if len(rows) == 0 {
		return nil
	}

	if o.output == outputYAML {
		out, err := yaml.Marshal(rows)
		if err != nil {
			return fmt.Errorf("yaml.Marshal: %w", err)
		}
		_, err = w.Write(out)
		return err
	}

	tw := tabwriter.NewWriter(w, 5, 4, 3, ' ', 0)
	fmt.Fprintln(tw, strings.Join(rows[0].TableHeader(), "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row.TableRow(), "\t"))
	}
	return tw.Flush()
}

type searchResult struct {
	Op     string `yaml:"op"`
	Needle string `yaml:"needle"`
	Index  int    `yaml:"index"`
	End    int    `yaml:"end"`
}

func (r searchResult) TableHeader() []string {
	return []string{"OP", "NEEDLE", "INDEX", "END"}
}

func (r searchResult) TableRow() []string {
	return []string{r.Op, strconv.Quote(r.Needle), strconv.Itoa(r.Index), strconv.Itoa(r.End)}
}

type equalResult struct {
	A     string `yaml:"a"`
	B     string `yaml:"b"`
	Equal bool   `yaml:"equal"`
}

func (r equalResult) TableHeader() []string { return []string{"A", "B", "EQUAL"} }

func (r equalResult) TableRow() []string {
	return []string{strconv.Quote(r.A), strconv.Quote(r.B), strconv.FormatBool(r.Equal)}
}

type compareResult struct {
	A     string `yaml:"a"`
	B     string `yaml:"b"`
	Order int    `yaml:"order"`
}

func (r compareResult) TableHeader() []string { return []string{"A", "B", "ORDER"} }

func (r compareResult) TableRow() []string {
	return []string{strconv.Quote(r.A), strconv.Quote(r.B), strconv.Itoa(r.Order)}
}

type fillResult struct {
	Value  string `yaml:"value"`
	Length int    `yaml:"length"`
}

func (r fillResult) TableHeader() []string { return []string{"VALUE", "LENGTH"} }

func (r fillResult) TableRow() []string {
	return []string{strconv.Quote(r.Value), strconv.Itoa(r.Length)}
}

type property struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

func (p property) TableHeader() []string { return []string{"PROPERTY", "VALUE"} }

func (p property) TableRow() []string { return []string{p.Name, p.Value} }
