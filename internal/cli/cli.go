package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values.
type Config struct {
	Setup     bool
	Teardown  bool
	Dialog    bool
	Clipboard bool
	Verbose   bool
	Target    string
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	// Define flags
	pflag.BoolVarP(&cfg.Dialog, "dialog", "d", false, "Skip the quick pick and go straight to the file-open dialog.")
	pflag.BoolVarP(&cfg.Clipboard, "clipboard", "c", false, "Overwrite the current file with clipboard (or piped stdin) content instead of a selected file.")
	pflag.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable debug logging.")

	// Mutually exclusive trigger-registration group
	pflag.BoolVar(&cfg.Setup, "setup", false, "Register the :PullFile command (and menu button) in the attached Neovim.")
	pflag.BoolVar(&cfg.Teardown, "teardown", false, "Remove the :PullFile command and menu button from the attached Neovim.")

	pflag.Usage = func() {
		fmt.Println("Usage: pullfile [flags] [file]")
		fmt.Println("\nOverwrite the current Neovim document with the contents of a selected file.")
		fmt.Println("With a file argument, operate on that file directly instead of an editor buffer.")
		fmt.Println("\nExample: inside a Neovim :terminal split, run: pullfile")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	// Validate mutually exclusive flags
	if cfg.Setup && cfg.Teardown {
		return nil, fmt.Errorf("error: --setup and --teardown are mutually exclusive")
	}

	args := pflag.Args()
	if len(args) > 1 {
		return nil, fmt.Errorf("error: at most one file argument is accepted, got %d", len(args))
	}
	if len(args) == 1 {
		cfg.Target = args[0]
	}

	return cfg, nil
}
