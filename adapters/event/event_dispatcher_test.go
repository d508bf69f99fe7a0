package event_test

import (
	"errors"
	"testing"

	"github.com/SeaCloudHub/patterns/adapters/event"
	"github.com/SeaCloudHub/patterns/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	listener string
	event    string
	file     string
}

type recorder struct {
	calls []call
}

type recordingListener struct {
	name string
	rec  *recorder
	err  error
}

func (l *recordingListener) Update(eventType string, filename string) error {
	l.rec.calls = append(l.rec.calls, call{listener: l.name, event: eventType, file: filename})
	return l.err
}

func newListener(rec *recorder, name string) *recordingListener {
	return &recordingListener{name: name, rec: rec}
}

func TestNotify(t *testing.T) {
	t.Run("it should invoke listeners in subscription order", func(t *testing.T) {
		rec := &recorder{}
		m := event.NewEventManager()
		a, b, c := newListener(rec, "a"), newListener(rec, "b"), newListener(rec, "c")

		m.Subscribe("open", a)
		m.Subscribe("open", b)
		m.Subscribe("save", c)

		require.NoError(t, m.Notify("open", "test.txt"))

		assert.Equal(t, []call{
			{listener: "a", event: "open", file: "test.txt"},
			{listener: "b", event: "open", file: "test.txt"},
		}, rec.calls)
	})

	t.Run("it should be a no-op without listeners", func(t *testing.T) {
		m := event.NewEventManager()

		assert.NoError(t, m.Notify("open", "test.txt"))
	})

	t.Run("it should invoke a duplicate subscription twice", func(t *testing.T) {
		rec := &recorder{}
		m := event.NewEventManager()
		a := newListener(rec, "a")

		m.Subscribe("open", a)
		m.Subscribe("open", a)

		require.NoError(t, m.Notify("open", "test.txt"))
		assert.Len(t, rec.calls, 2)
	})

	t.Run("it should deliver to the same listener under each event independently", func(t *testing.T) {
		rec := &recorder{}
		m := event.NewEventManager()
		a := newListener(rec, "a")

		m.Subscribe("open", a)
		m.Subscribe("save", a)

		require.NoError(t, m.Notify("open", "a.txt"))
		require.NoError(t, m.Notify("save", "b.txt"))

		assert.Equal(t, []call{
			{listener: "a", event: "open", file: "a.txt"},
			{listener: "a", event: "save", file: "b.txt"},
		}, rec.calls)
	})

	t.Run("it should stop at the first failing listener", func(t *testing.T) {
		rec := &recorder{}
		m := event.NewEventManager()
		boom := errors.New("boom")
		a, b, c := newListener(rec, "a"), newListener(rec, "b"), newListener(rec, "c")
		b.err = boom

		m.Subscribe("save", a)
		m.Subscribe("save", b)
		m.Subscribe("save", c)

		err := m.Notify("save", "test.txt")

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, []string{"a", "b"}, names(rec.calls))
	})

	t.Run("it should keep listeners registered after a notification", func(t *testing.T) {
		rec := &recorder{}
		m := event.NewEventManager()
		m.Subscribe("open", newListener(rec, "a"))

		require.NoError(t, m.Notify("open", "1.txt"))
		require.NoError(t, m.Notify("open", "2.txt"))

		assert.Len(t, rec.calls, 2)
	})

	t.Run("it should ignore a nil listener", func(t *testing.T) {
		m := event.NewEventManager()
		m.Subscribe("open", nil)

		assert.Empty(t, m.Listeners("open"))
		assert.NoError(t, m.Notify("open", "test.txt"))
	})
}

func TestUnsubscribe(t *testing.T) {
	t.Run("it should not invoke a removed listener", func(t *testing.T) {
		rec := &recorder{}
		m := event.NewEventManager()
		a, b := newListener(rec, "a"), newListener(rec, "b")

		m.Subscribe("open", a)
		m.Subscribe("open", b)
		m.Unsubscribe("open", a)

		require.NoError(t, m.Notify("open", "test.txt"))
		assert.Equal(t, []string{"b"}, names(rec.calls))
	})

	t.Run("it should only remove the listener from the given event", func(t *testing.T) {
		rec := &recorder{}
		m := event.NewEventManager()
		a := newListener(rec, "a")

		m.Subscribe("open", a)
		m.Subscribe("save", a)
		m.Unsubscribe("open", a)

		require.NoError(t, m.Notify("open", "test.txt"))
		require.NoError(t, m.Notify("save", "test.txt"))

		assert.Equal(t, []call{{listener: "a", event: "save", file: "test.txt"}}, rec.calls)
	})

	t.Run("it should remove one occurrence of a duplicate", func(t *testing.T) {
		rec := &recorder{}
		m := event.NewEventManager()
		a := newListener(rec, "a")

		m.Subscribe("open", a)
		m.Subscribe("open", a)
		m.Unsubscribe("open", a)

		assert.Len(t, m.Listeners("open"), 1)
	})

	t.Run("it should be a no-op for an unknown listener", func(t *testing.T) {
		rec := &recorder{}
		m := event.NewEventManager()
		a := newListener(rec, "a")
		m.Subscribe("open", a)

		m.Unsubscribe("open", newListener(rec, "a"))
		m.Unsubscribe("save", a)

		assert.Equal(t, []domain.EventListener{a}, m.Listeners("open"))
	})
}

type subscribingListener struct {
	m     *event.EventManager
	extra domain.EventListener
}

func (l *subscribingListener) Update(eventType string, filename string) error {
	l.m.Subscribe(eventType, l.extra)
	return nil
}

func TestSubscribeDuringNotify(t *testing.T) {
	rec := &recorder{}
	m := event.NewEventManager()
	extra := newListener(rec, "extra")
	m.Subscribe("open", &subscribingListener{m: m, extra: extra})

	require.NoError(t, m.Notify("open", "1.txt"))
	assert.Empty(t, rec.calls)

	require.NoError(t, m.Notify("open", "2.txt"))
	assert.Equal(t, []call{{listener: "extra", event: "open", file: "2.txt"}}, rec.calls)
}

func TestListeners(t *testing.T) {
	rec := &recorder{}
	m := event.NewEventManager()
	a := newListener(rec, "a")
	m.Subscribe("open", a)

	got := m.Listeners("open")
	got[0] = newListener(rec, "b")

	assert.Equal(t, []domain.EventListener{a}, m.Listeners("open"))
	assert.Nil(t, m.Listeners("save"))
}

func names(calls []call) []string {
	var out []string
	for _, c := range calls {
		out = append(out, c.listener)
	}

	return out
}

type unsubscribingListener struct {
	m      *event.EventManager
	target domain.EventListener
}

func (l *unsubscribingListener) Update(eventType string, filename string) error {
	l.m.Unsubscribe(eventType, l.target)
	return nil
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	rec := &recorder{}
	m := event.NewEventManager()
	b := newListener(rec, "b")
	m.Subscribe("open", &unsubscribingListener{m: m, target: b})
	m.Subscribe("open", b)

	require.NoError(t, m.Notify("open", "1.txt"))
	assert.Equal(t, []string{"b"}, names(rec.calls))

	require.NoError(t, m.Notify("open", "2.txt"))
	assert.Equal(t, []string{"b"}, names(rec.calls))
}

type valueListener struct {
	tags []string
}

func (l valueListener) Update(eventType string, filename string) error {
	return nil
}

func TestSubscribeRejectsUnusableListeners(t *testing.T) {
	t.Run("it should ignore a typed nil listener", func(t *testing.T) {
		m := event.NewEventManager()
		var l *recordingListener

		m.Subscribe("open", l)

		assert.Empty(t, m.Listeners("open"))
		assert.NotPanics(t, func() { _ = m.Notify("open", "test.txt") })
	})

	t.Run("it should ignore a listener that cannot be compared", func(t *testing.T) {
		m := event.NewEventManager()

		m.Subscribe("open", valueListener{tags: []string{"a"}})

		assert.Empty(t, m.Listeners("open"))
	})

	t.Run("it should not panic unsubscribing a listener that cannot be compared", func(t *testing.T) {
		rec := &recorder{}
		m := event.NewEventManager()
		a := newListener(rec, "a")
		m.Subscribe("open", a)

		assert.NotPanics(t, func() {
			m.Unsubscribe("open", valueListener{})
			m.Unsubscribe("open", nil)
		})
		assert.Equal(t, []domain.EventListener{a}, m.Listeners("open"))
	})
}
