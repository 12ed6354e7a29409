package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/hanssen-studio/portfolio/internal/contact"
	"github.com/hanssen-studio/portfolio/internal/db"
)

func newTestInbox(t *testing.T) *contact.Inbox {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return contact.NewInbox(database)
}

func deliver(t *testing.T, inbox *contact.Inbox, id, name string, at time.Time) {
	t.Helper()
	err := inbox.Deliver(context.Background(), contact.Submission{
		ID:        id,
		Form:      contact.Form{Name: name, Email: name + "@example.com", Message: "  Hello from " + name + "\n"},
		CreatedAt: at,
	})
	if err != nil {
		t.Fatalf("delivering %s: %v", id, err)
	}
}

func TestListInbox(t *testing.T) {
	inbox := newTestInbox(t)
	base := time.Date(2024, 6, 24, 10, 0, 0, 0, time.UTC)
	deliver(t, inbox, "a1", "ada", base)
	deliver(t, inbox, "b2", "bo", base.Add(time.Hour))

	var buf bytes.Buffer
	if err := listInbox(context.Background(), &buf, inbox, 1); err != nil {
		t.Fatalf("listInbox: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "b2") || strings.Contains(out, "a1") {
		t.Errorf("limit 1 should show only the newest submission:\n%s", out)
	}
	if !strings.Contains(out, "Showing 1 of 2 submissions") {
		t.Errorf("missing summary line:\n%s", out)
	}
}

func TestListInboxEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := listInbox(context.Background(), &buf, newTestInbox(t), 0); err != nil {
		t.Fatalf("listInbox: %v", err)
	}
	if got := buf.String(); got != "No submissions.\n" {
		t.Errorf("output = %q", got)
	}
}

func TestShowSubmission(t *testing.T) {
	inbox := newTestInbox(t)
	deliver(t, inbox, "a1", "ada", time.Date(2024, 6, 24, 10, 0, 0, 0, time.UTC))

	var buf bytes.Buffer
	if err := showSubmission(context.Background(), &buf, inbox, "a1"); err != nil {
		t.Fatalf("showSubmission: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"ID:       a1", "Email:    ada@example.com", "\nHello from ada\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if err := showSubmission(context.Background(), &buf, inbox, "missing"); err == nil {
		t.Error("expected an error for an unknown id")
	}
}
