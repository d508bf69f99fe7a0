package event

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/SeaCloudHub/patterns/domain"
	"go.uber.org/zap"
)

type Option func(m *EventManager)

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(m *EventManager) {
		m.logger = logger
	}
}

// EventManager keeps listeners per event type and notifies them in
// subscription order.
type EventManager struct {
	listeners map[string][]domain.EventListener
	mutex     sync.Mutex
	logger    *zap.SugaredLogger
}

func NewEventManager(options ...Option) *EventManager {
	m := &EventManager{
		listeners: make(map[string][]domain.EventListener),
		logger:    zap.NewNop().Sugar(),
	}

	for _, fn := range options {
		fn(m)
	}

	return m
}

// Subscribe ignores nil listeners, typed nils included, and listeners whose
// dynamic type cannot be compared for Unsubscribe.
func (m *EventManager) Subscribe(eventType string, listener domain.EventListener) {
	if !usable(listener) {
		m.logger.Warnw("ignoring listener",
			zap.String("event", eventType),
			zap.String("type", fmt.Sprintf("%T", listener)),
		)
		return
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.listeners[eventType] = append(m.listeners[eventType], listener)
}

// Unsubscribe removes the first occurrence of listener.
func (m *EventManager) Unsubscribe(eventType string, listener domain.EventListener) {
	if !usable(listener) {
		return
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	listeners := m.listeners[eventType]
	for i, l := range listeners {
		if l != listener {
			continue
		}

		remaining := append(listeners[:i], listeners[i+1:]...)
		if len(remaining) == 0 {
			delete(m.listeners, eventType)
		} else {
			m.listeners[eventType] = remaining
		}

		return
	}
}

// Notify stops at the first failing listener and returns its error as is.
func (m *EventManager) Notify(eventType string, filename string) error {
	listeners := m.Listeners(eventType)

	m.logger.Debugw("notifying listeners",
		zap.String("event", eventType),
		zap.String("file", filename),
		zap.Int("listeners", len(listeners)),
	)

	for _, listener := range listeners {
		if err := listener.Update(eventType, filename); err != nil {
			return err
		}
	}

	return nil
}

func (m *EventManager) Listeners(eventType string) []domain.EventListener {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	listeners := m.listeners[eventType]
	if len(listeners) == 0 {
		return nil
	}

	snapshot := make([]domain.EventListener, len(listeners))
	copy(snapshot, listeners)

	return snapshot
}

func usable(listener domain.EventListener) bool {
	if listener == nil {
		return false
	}

	v := reflect.ValueOf(listener)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		if v.IsNil() {
			return false
		}
	}

	return v.Type().Comparable()
}
