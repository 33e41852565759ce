package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text" // human-readable table
)

// FormatFlag returns the current value of a --format flag, the flag itself
// for adding to a command, and a completion function for it.
func FormatFlag(defaultFormat Format, validFormats []Format) (*Format, *pflag.Flag, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective)) {
	f := &formatFlag{format: defaultFormat, validFormats: validFormats}
	return &f.format, &pflag.Flag{
		Name:     "format",
		Usage:    f.Usage(),
		Value:    f,
		DefValue: string(defaultFormat),
	}, f.CompletionFunc
}

type FormatFlagError string

func (err FormatFlagError) Error() string {
	return fmt.Sprintf("--format %q not supported", string(err))
}

func NoCompletionFunc(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveNoFileComp
}

type formatFlag struct {
	format       Format
	validFormats []Format
}

func (f *formatFlag) CompletionFunc(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	ss := make([]string, len(f.validFormats))
	for i, v := range f.validFormats {
		ss[i] = string(v)
	}
	return ss, cobra.ShellCompDirectiveNoFileComp
}

func (f *formatFlag) Set(format string) error {
	for _, v := range f.validFormats {
		if Format(format) == v {
			f.format = v
			return nil
		}
	}
	return FormatFlagError(format)
}

func (f *formatFlag) String() string {
	return string(f.format)
}

func (*formatFlag) Type() string {
	return "<format>"
}

func (f *formatFlag) Usage() string {
	var ss []string
	for _, v := range f.validFormats {
		switch v {
		case FormatJSON:
			ss = append(ss, "json")
		case FormatText:
			ss = append(ss, "text (for human-readable plaintext)")
		}
	}
	return fmt.Sprint("output format - ", strings.Join(ss, ", "))
}
