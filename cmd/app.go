// Package cmd implements the CLI application to manage an inventory.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/inventory"
	"github.com/google/subcommands"
)

// commands lists the subcommands by group.
var commands = []struct {
	group string
	cmd   subcommands.Command
}{
	{"items", &addCmd{}},
	{"items", &viewCmd{}},
	{"items", &updateCmd{}},
	{"items", &deleteCmd{}},
	{"session", &menuCmd{}},
	{"maintenance", &fmtCmd{}},
	{"help", &topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	for _, x := range commands {
		c.Register(x.cmd, x.group)
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var inventoryFile = flag.String("inventory-file", "inventory.json", "Path to the inventory file (JSON format)")
var currency = flag.String("currency", "", "Currency used to display prices (3-letter code), plain numbers by default")
var verbose = flag.Bool("v", false, "Print load details and every transaction log entry on stderr")

// OpenStore opens the inventory store at the app inventory file.
// A file that cannot be loaded is reported on stderr, the store then starts empty.
func OpenStore() *inventory.Store {
	var logger *log.Logger
	if *verbose {
		logger = log.Default()
	}
	s := inventory.Open(*inventoryFile, inventory.WithLogger(logger))
	if err := s.LoadErr(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Fprintf(os.Stderr, "Warning: starting with an empty inventory, the file will be preserved as %q on the next change.\n", inventory.CorruptPath(s.Path()))
	}
	return s
}

// displayCurrency returns the validated -currency flag.
func displayCurrency() (string, error) {
	if *currency == "" {
		return "", nil
	}
	if err := inventory.ValidateCurrency(*currency); err != nil {
		return "", err
	}
	return *currency, nil
}

// printMarkdown renders md for the terminal, falling back to the raw markdown.
func printMarkdown(md string) {
	fprintMarkdown(os.Stdout, md)
}

func fprintMarkdown(w io.Writer, md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}

// exitStatus reports err on stderr and converts it to an exit status.
func exitStatus(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, errUsage) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
