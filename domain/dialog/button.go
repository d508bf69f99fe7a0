package dialog

import (
	"errors"
	"fmt"
	"io"
)

var (
	ErrWindowClosed = errors.New("window closed")
)

type ClickHandler func(w io.Writer) error

type Button interface {
	Render(w io.Writer) error
	OnClick(h ClickHandler)
	Click(w io.Writer) error
}

// HTMLButton fires its click handler as part of rendering.
type HTMLButton struct {
	onClick ClickHandler
}

func (b *HTMLButton) Render(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "<button>Test Button</button>"); err != nil {
		return err
	}

	return b.Click(w)
}

func (b *HTMLButton) OnClick(h ClickHandler) {
	b.onClick = h
}

func (b *HTMLButton) Click(w io.Writer) error {
	if b.onClick == nil {
		return nil
	}

	return b.onClick(w)
}

// WindowsButton is drawn inside a window that closes after the first click.
type WindowsButton struct {
	onClick ClickHandler
	closed  bool
}

const windowFrame = `+--------------------+
|    Hello World!    |
|      [ Exit ]      |
+--------------------+
`

func (b *WindowsButton) Render(w io.Writer) error {
	if b.closed {
		return ErrWindowClosed
	}

	_, err := io.WriteString(w, windowFrame)
	return err
}

func (b *WindowsButton) OnClick(h ClickHandler) {
	b.onClick = h
}

func (b *WindowsButton) Click(w io.Writer) error {
	if b.closed {
		return ErrWindowClosed
	}

	if b.onClick != nil {
		if err := b.onClick(w); err != nil {
			return err
		}
	}

	b.closed = true
	_, err := fmt.Fprintln(w, "Window closed")
	return err
}

func (b *WindowsButton) Closed() bool {
	return b.closed
}
