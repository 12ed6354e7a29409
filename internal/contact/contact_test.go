package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hanssen-studio/portfolio/internal/db"
)

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"plain text":                    "plain text",
		"<b>bold</b>":                   "bold",
		"hi <script>alert(1)</script>!": "hi alert(1)!",
		"dangling <img src=x":           "dangling ",
		"a < b":                         "a ",
		"5 > 3":                         "5 > 3",
		"<<nested>>":                    ">",
		"":                              "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Sanitize(in), "input %q", in)
	}
}

func TestValidate(t *testing.T) {
	err := Form{Name: "Ana", Email: " ", Message: ""}.Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"email", "message"}, verr.Missing)
	assert.Contains(t, err.Error(), "email, message")

	assert.NoError(t, Form{Name: "Ana", Email: "ana@example.com", Message: "Hello"}.Validate())
}

type failingOutbox struct{}

func (failingOutbox) Deliver(context.Context, Submission) error { return errors.New("boom") }

func TestSubmitLogs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	out := NewLogOutbox(zap.New(core))

	sub, err := Submit(context.Background(), out, Form{
		Name:    "<i>Ana</i>",
		Email:   "ana@example.com",
		Message: "Book a <b>shoot</b>",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, "Ana", sub.Form.Name)
	assert.Equal(t, "Book a shoot", sub.Form.Message)

	entries := logs.FilterMessage("contact form submitted").All()
	require.Len(t, entries, 1)
	assert.Equal(t, sub.ID, entries[0].ContextMap()["id"])
}

func TestSubmitRejectsTagOnlyFields(t *testing.T) {
	_, err := Submit(context.Background(), NewLogOutbox(nil), Form{
		Name:    "<b></b>",
		Email:   "ana@example.com",
		Message: "hi",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name"}, verr.Missing)
}

func TestSubmitDeliveryError(t *testing.T) {
	_, err := Submit(context.Background(), failingOutbox{}, Form{Name: "a", Email: "b", Message: "c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestInbox(t *testing.T) {
	database, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	inbox := NewInbox(database)
	ctx := context.Background()

	first, err := Submit(ctx, inbox, Form{Name: "Ana", Email: "ana@example.com", Message: "First"})
	require.NoError(t, err)
	_, err = Submit(ctx, inbox, Form{Name: "Ben", Email: "ben@example.com", Message: "Second"})
	require.NoError(t, err)

	n, err := inbox.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := inbox.Get(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "First", got.Form.Message)

	missing, err := inbox.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, err := inbox.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
