package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/Shopify/gowaitlist/internal/signup"

	"github.com/rs/zerolog/log"
)

// UI renders the signup form's status slot and counter on a terminal.
type UI struct {
	mu  sync.Mutex
	out io.Writer
}

func MakeUI(out io.Writer) *UI {
	return &UI{out: out}
}

func (ui *UI) SetStatus(status signup.Status) {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	mark := "✓"
	if !status.OK {
		mark = "✗"
	}
	fmt.Fprintf(ui.out, "%s %s\n", mark, status.Message)
}

func (ui *UI) SetBusy(busy bool) {
	log.Debug().Bool("busy", busy).Msg("submit control")
}

func (ui *UI) ResetForm() {
	log.Debug().Msg("form reset")
}

func (ui *UI) FocusField(field string) {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	fmt.Fprintf(ui.out, "  (check the %s you entered)\n", field)
}

func (ui *UI) SetCount(text string) {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	fmt.Fprintf(ui.out, "  waitlist: %s people\n", text)
}

// Navigator cannot launch a mail client from a terminal, so it prints the link instead.
type Navigator struct {
	out io.Writer
}

func MakeNavigator(out io.Writer) *Navigator {
	return &Navigator{out: out}
}

func (n *Navigator) Open(uri string) error {
	_, err := fmt.Fprintf(n.out, "  open this link to email us: %s\n", uri)
	return err
}
