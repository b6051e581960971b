package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/blockmail/core/mailer"
)

type sendOpts struct {
	to       string
	subject  string
	tag      string
	settings string
}

func (c *CLI) sendCommand() *cobra.Command {
	var opts sendOpts

	cmd := &cobra.Command{
		Use:   "send <document.json>",
		Short: "Render a document and deliver it with the configured provider",
		Long: `Send renders the document and delivers it through EMAIL_PROVIDER
(dev, smtp or postmark). With STORAGE_DRIVER set to local or s3 the
delivered body is archived as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadDocument(args[0], opts.settings)
			if err != nil {
				return err
			}

			m, err := c.newMailer(cmd.Context())
			if err != nil {
				return err
			}

			res, err := m.Send(cmd.Context(), mailer.Message{
				To:       opts.to,
				Subject:  opts.subject,
				Tag:      opts.tag,
				Document: doc,
			})
			if err != nil {
				return err
			}

			if res.ArchiveURL != "" {
				fmt.Fprintln(c.stdout, res.ArchiveURL)
			} else if res.ArchiveKey != "" {
				fmt.Fprintln(c.stdout, res.ArchiveKey)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", "", "recipient address")
	cmd.Flags().StringVar(&opts.subject, "subject", "", "message subject")
	cmd.Flags().StringVar(&opts.tag, "tag", "", "message tag for provider analytics")
	cmd.Flags().StringVar(&opts.settings, "settings", "", "TOML file with settings overrides")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
