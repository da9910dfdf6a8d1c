package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"

	"pullfile/internal/cli"
	"pullfile/internal/config"
	"pullfile/internal/editor"
	"pullfile/internal/picker"
	"pullfile/internal/pull"
	"pullfile/internal/source"
	"pullfile/internal/ui"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "pullfile"})
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	settings, err := config.Load()
	if err != nil {
		ui.Warning("Could not read settings, using defaults: %v", err)
		settings = config.Defaults()
	}
	if cfg.Dialog {
		settings.UseQuickPick = false
	}

	if err := run(cfg, settings, logger); err != nil {
		ui.Error("Error: %v", err)
		os.Exit(1)
	}
}

func run(cfg *cli.Config, settings config.Settings, logger *log.Logger) error {
	if cfg.Setup || cfg.Teardown {
		return configureTrigger(cfg, settings, logger)
	}

	doc, cleanup, err := openDocument(cfg, logger)
	if err != nil {
		return err
	}
	if doc == nil {
		// The trigger normally only fires with an editor focused; invoked by
		// hand without one, there is simply nothing to do.
		ui.Warning("No active document. Open a file in Neovim or pass a path.")
		return nil
	}
	defer cleanup()

	wf := pull.New(doc, picker.Terminal{}, settings, logger)

	if cfg.Clipboard {
		content, err := source.New().GetContent()
		if err != nil {
			return err
		}
		if content == "" {
			return nil
		}
		if err := wf.PullContent(content); err != nil {
			return err
		}
		ui.Success("Pulled clipboard content into %s", doc.Path())
		return nil
	}

	pulled, err := wf.Run()
	if err != nil {
		return err
	}
	if pulled != "" {
		ui.Success("Pulled %s into %s", pulled, doc.Path())
	}
	return nil
}

// configureTrigger wires (or removes) the :PullFile command and menu button
// in the attached editor.
func configureTrigger(cfg *cli.Config, settings config.Settings, logger *log.Logger) error {
	manager, err := editor.New(logger)
	if err != nil {
		return err
	}
	defer manager.Close()

	if cfg.Teardown {
		if err := manager.Teardown(); err != nil {
			return err
		}
		ui.Success(":PullFile trigger removed.")
		return nil
	}

	if err := manager.Setup(settings); err != nil {
		return err
	}
	ui.Success(":PullFile trigger registered.")
	return nil
}

// openDocument captures the document for this invocation: the attached
// editor's active buffer, or a disk file when a path argument was given.
// A nil document with a nil error means there is nothing to operate on.
func openDocument(cfg *cli.Config, logger *log.Logger) (pull.Document, func(), error) {
	if cfg.Target != "" {
		doc, err := editor.OpenLocal(cfg.Target)
		if err != nil {
			return nil, nil, err
		}
		return doc, func() {}, nil
	}

	manager, err := editor.New(logger)
	if err != nil {
		if errors.Is(err, editor.ErrNoEditor) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	doc, err := manager.ActiveDocument()
	if err != nil {
		manager.Close()
		if errors.Is(err, editor.ErrNoDocument) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	return doc, manager.Close, nil
}
