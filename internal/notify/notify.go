package notify

import "github.com/pterm/pterm"

// Notification carries display-mode values only; formatting decisions
// per channel stay in the channels.
type Notification struct {
	Date           string
	BLZ            string
	AccountNumber  string
	Amount         string
	ApplicantName  string
	PostingText    string
	HasPostingText bool
	PurposeLines   []string
	Balance        string
}

// Channel is one delivery target for new-transaction notifications.
type Channel interface {
	Name() string

	// External reports whether sending leaves the local machine.
	// External channels are suppressed in dry-run mode.
	External() bool

	Send(n *Notification) error
}

// Dispatcher fans a notification out to every configured channel. A
// failing channel is logged and skipped; it never blocks the other
// channels or the rest of the run.
type Dispatcher struct {
	channels []Channel
	dryRun   bool
}

func NewDispatcher(dryRun bool, channels ...Channel) *Dispatcher {
	return &Dispatcher{channels: channels, dryRun: dryRun}
}

func (d *Dispatcher) Dispatch(n *Notification) {
	for _, ch := range d.channels {
		if d.dryRun && ch.External() {
			pterm.Debug.Printfln("dry-run: skipping %s notification", ch.Name())
			continue
		}
		if err := ch.Send(n); err != nil {
			pterm.Warning.Printfln("sending %s notification failed: %v", ch.Name(), err)
		}
	}
}
