// Package dialog renders a platform specific button through a factory method.
package dialog

import (
	"errors"
	"fmt"
	"io"
)

const (
	PlatformWindows = "windows"
	PlatformHTML    = "html"
)

var (
	ErrUnknownPlatform = errors.New("unknown platform")
)

// Factory creates the button a dialog renders.
type Factory interface {
	CreateButton() Button
}

type WindowsDialog struct{}

func (WindowsDialog) CreateButton() Button {
	return &WindowsButton{}
}

type HTMLDialog struct{}

func (HTMLDialog) CreateButton() Button {
	return &HTMLButton{}
}

// Render creates one button from f, binds the click handler and renders it.
// The rendered button is returned so the caller can click it.
func Render(f Factory, w io.Writer) (Button, error) {
	button := f.CreateButton()
	button.OnClick(sayHello)

	if err := button.Render(w); err != nil {
		return nil, fmt.Errorf("render button: %w", err)
	}

	return button, nil
}

func sayHello(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Click! Button says - 'Hello World!'")
	return err
}

func New(platform string) (Factory, error) {
	switch platform {
	case PlatformWindows:
		return WindowsDialog{}, nil
	case PlatformHTML:
		return HTMLDialog{}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
}

// PlatformFor maps a GOOS value to the dialog platform used on it.
func PlatformFor(goos string) string {
	if goos == "windows" {
		return PlatformWindows
	}

	return PlatformHTML
}
