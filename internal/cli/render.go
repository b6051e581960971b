package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/blockmail/core/blocks"
	"github.com/dmitrymomot/blockmail/core/email/templates"
	"github.com/dmitrymomot/blockmail/core/logger"
)

type renderOpts struct {
	output   string
	settings string
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <document.json>",
		Short: "Render a block document to email HTML",
		Long: `Render reads an editor document (use "-" for stdin) and writes the
email HTML to stdout or to --output. A TOML file passed with --settings
overrides the document's settings field by field.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			doc, err := c.loadDocument(args[0], opts.settings)
			if err != nil {
				return err
			}

			html, err := templates.Render(cmd.Context(), blocks.Component(doc))
			if err != nil {
				return err
			}

			if err := c.writeOutput(opts.output, html); err != nil {
				return err
			}
			c.Logger.Info("rendered document",
				logger.Blocks(len(doc.Blocks)),
				logger.Bytes(len(html)),
				logger.Elapsed(start),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write HTML to file instead of stdout")
	cmd.Flags().StringVar(&opts.settings, "settings", "", "TOML file with settings overrides")

	return cmd
}

// loadDocument reads the document at path ("-" for stdin) and applies the
// optional TOML settings overlay.
func (c *CLI) loadDocument(path, settingsPath string) (blocks.Document, error) {
	data, err := c.readInput(path)
	if err != nil {
		return blocks.Document{}, err
	}

	doc, err := blocks.ParseDocument(data)
	if err != nil {
		return blocks.Document{}, fmt.Errorf("%s: %w", path, err)
	}

	if settingsPath != "" {
		var overlay blocks.Settings
		if _, err := toml.DecodeFile(settingsPath, &overlay); err != nil {
			return blocks.Document{}, fmt.Errorf("%w: settings %s: %w", ErrReadInput, settingsPath, err)
		}
		doc.Settings = doc.Settings.Merge(overlay)
		c.Logger.Debug("applied settings overlay", logger.Key("file", settingsPath))
	}

	return doc, nil
}

func (c *CLI) readInput(path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(c.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return data, nil
}

func (c *CLI) writeOutput(path, content string) error {
	if path == "" {
		if _, err := io.WriteString(c.stdout, content); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
