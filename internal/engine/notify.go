package engine

// Notifier receives user-visible one-shot notifications (points earned,
// badge unlocked, duplicate action prevented). Delivery is best-effort and
// fire-and-forget; the sink is injected at construction rather than shared
// through a global.
type Notifier interface {
	Notify(title, message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(title, message string)

func (f NotifierFunc) Notify(title, message string) { f(title, message) }

// NopNotifier drops every notification.
type NopNotifier struct{}

func (NopNotifier) Notify(title, message string) {}
