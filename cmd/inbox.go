package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hanssen-studio/portfolio/internal/config"
	"github.com/hanssen-studio/portfolio/internal/contact"
	"github.com/hanssen-studio/portfolio/internal/db"
)

var inboxLimit int

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Read contact form submissions stored in the sqlite inbox",
	Long:  `Reads the contact submissions recorded when contact.outbox is sqlite.`,
}

var inboxListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent submissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		inbox, closeInbox, err := openInbox()
		if err != nil {
			return err
		}
		defer closeInbox()
		return listInbox(cmd.Context(), os.Stdout, inbox, inboxLimit)
	},
}

var inboxShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one submission",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inbox, closeInbox, err := openInbox()
		if err != nil {
			return err
		}
		defer closeInbox()
		return showSubmission(cmd.Context(), os.Stdout, inbox, args[0])
	},
}

func init() {
	inboxListCmd.Flags().IntVarP(&inboxLimit, "limit", "n", 20, "number of submissions to show (0 for all)")
	inboxCmd.AddCommand(inboxListCmd, inboxShowCmd)
	rootCmd.AddCommand(inboxCmd)
}

func openInbox() (*contact.Inbox, func() error, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Contact.Outbox != config.OutboxSQLite {
		return nil, nil, fmt.Errorf("contact.outbox is %q; submissions are only stored with the sqlite outbox", cfg.Contact.Outbox)
	}
	database, err := db.Open(cfg.Contact.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening inbox database: %w", err)
	}
	return contact.NewInbox(database), database.Close, nil
}

func listInbox(ctx context.Context, w io.Writer, inbox *contact.Inbox, limit int) error {
	total, err := inbox.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting submissions: %w", err)
	}
	subs, err := inbox.List(ctx, limit)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		fmt.Fprintln(w, "No submissions.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tRECEIVED\tNAME\tEMAIL")
	for _, s := range subs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.Form.Name, s.Form.Email)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nShowing %d of %d submissions\n", len(subs), total)
	return nil
}

func showSubmission(ctx context.Context, w io.Writer, inbox *contact.Inbox, id string) error {
	s, err := inbox.Get(ctx, id)
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("no submission with id %s", id)
	}
	fmt.Fprintf(w, "ID:       %s\n", s.ID)
	fmt.Fprintf(w, "Received: %s\n", s.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "Name:     %s\n", s.Form.Name)
	fmt.Fprintf(w, "Email:    %s\n", s.Form.Email)
	fmt.Fprintf(w, "\n%s\n", strings.TrimSpace(s.Form.Message))
	return nil
}
