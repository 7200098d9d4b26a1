package notify

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Console echoes notifications to a local stream. It also runs in
// dry-run mode.
type Console struct {
	out io.Writer
}

func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewConsoleWriter is used by tests to capture output.
func NewConsoleWriter(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Name() string   { return "console" }
func (c *Console) External() bool { return false }

func (c *Console) Send(n *Notification) error {
	fmt.Fprintf(c.out, "%s BLZ %s account %s: %s \"%s\"\n", n.Date, n.BLZ, n.AccountNumber, n.Amount, n.ApplicantName)

	prefix := ""
	if n.HasPostingText {
		prefix = n.PostingText + ": "
	}
	fmt.Fprintf(c.out, "%s%s\n", prefix, strings.Join(n.PurposeLines, " "))
	fmt.Fprintf(c.out, "New balance: %s\n\n", n.Balance)

	return nil
}
