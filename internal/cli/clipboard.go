package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
)

// osc52Clipboard copies text through the terminal with an OSC 52 escape
// sequence, which also works over SSH.
type osc52Clipboard struct {
	w io.Writer
}

func (c osc52Clipboard) WriteText(_ context.Context, text string) error {
	seq := osc52.New(text)
	switch {
	case os.Getenv("TMUX") != "":
		seq = seq.Tmux()
	case os.Getenv("STY") != "":
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(c.w); err != nil {
		return fmt.Errorf("write clipboard sequence: %w", err)
	}
	return nil
}

// discardClipboard is used with --no-copy.
type discardClipboard struct{}

func (discardClipboard) WriteText(context.Context, string) error { return nil }

// terminalNotifier prints notifications: success to out, failure to errOut.
type terminalNotifier struct {
	out    io.Writer
	errOut io.Writer
	styles styles
}

func (n terminalNotifier) NotifySuccess(_ context.Context, message string) {
	fmt.Fprintln(n.out, n.styles.success.Render(message))
}

func (n terminalNotifier) NotifyFailure(_ context.Context, message string, _ error) {
	fmt.Fprintln(n.errOut, n.styles.failure.Render(message))
}

