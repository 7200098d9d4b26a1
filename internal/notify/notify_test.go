package notify

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingChannel struct {
	name     string
	external bool
	err      error
	sent     []*Notification
}

func (c *recordingChannel) Name() string   { return c.name }
func (c *recordingChannel) External() bool { return c.external }

func (c *recordingChannel) Send(n *Notification) error {
	c.sent = append(c.sent, n)
	return c.err
}

func TestDispatch_FailingChannelDoesNotBlockOthers(t *testing.T) {
	failing := &recordingChannel{name: "broken", err: errors.New("boom")}
	working := &recordingChannel{name: "working"}

	d := NewDispatcher(false, failing, working)
	d.Dispatch(testNotification())

	assert.Len(t, failing.sent, 1)
	assert.Len(t, working.sent, 1)
}

func TestDispatch_DryRunSuppressesExternalChannels(t *testing.T) {
	local := &recordingChannel{name: "console"}
	external := &recordingChannel{name: "telegram", external: true}

	d := NewDispatcher(true, local, external)
	d.Dispatch(testNotification())

	assert.Len(t, local.sent, 1)
	assert.Empty(t, external.sent)
}

func TestConsoleSend(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf)

	assert.NoError(t, c.Send(testNotification()))

	out := buf.String()
	assert.Contains(t, out, `2024-01-05 BLZ 10010010 account 123456: -20.00 EUR "ACME GMBH"`)
	assert.Contains(t, out, "SEPA-Lastschrift: Rent January Unit 4B")
	assert.Contains(t, out, "New balance: 80.00")
}

func TestConsoleSend_NoPostingText(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf)

	n := testNotification()
	n.HasPostingText = false
	n.PostingText = ""
	assert.NoError(t, c.Send(n))

	assert.Contains(t, buf.String(), "\nRent January Unit 4B\n")
}
