package editor

import (
	"errors"

	"github.com/SeaCloudHub/patterns/domain"
)

const (
	EventOpen = "open"
	EventSave = "save"
)

var (
	ErrNoFileOpened = errors.New("please open a file first")
)

type Editor struct {
	events domain.EventDispatcher
	file   string
}

func New(events domain.EventDispatcher) *Editor {
	return &Editor{events: events}
}

// Events exposes subscription only; notifying is reserved to the editor.
func (e *Editor) Events() domain.EventSubscriber {
	return e.events
}

func (e *Editor) File() string {
	return e.file
}

func (e *Editor) OpenFile(path string) error {
	e.file = path

	return e.events.Notify(EventOpen, e.file)
}

func (e *Editor) SaveFile() error {
	if e.file == "" {
		return ErrNoFileOpened
	}

	return e.events.Notify(EventSave, e.file)
}
