package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"bankbook"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the bank as JSONL" }
func (*exportCmd) Usage() string {
	return `bnk export [-o <file>]

  Writes the bank in JSONL interchange format, one record per line, to the
  file or to stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	bank, s, err := loadBank()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading bank: %v\n", err)
		return subcommands.ExitFailure
	}
	s.Close()

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	if err := bankbook.EncodeBank(out, bank); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting bank: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a bank from JSONL" }
func (*importCmd) Usage() string {
	return `bnk import [-i <file>]

  Reads a bank in JSONL interchange format from the file or from stdin and
  replaces the database content with it.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Input file. Defaults to stdin.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in := os.Stdin
	if c.input != "" {
		var err error
		in, err = os.Open(c.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.input, err)
			return subcommands.ExitFailure
		}
		defer in.Close()
	}

	bank, err := bankbook.DecodeBank(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding bank: %v\n", err)
		return subcommands.ExitFailure
	}

	s, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveBank(s, bank); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving bank: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d accounts.\n", len(bank.Summary()))
	return subcommands.ExitSuccess
}
