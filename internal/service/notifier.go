package service

import "incentivehub/internal/websocket"

// Notifier pushes workflow events to connected dashboards. The websocket
// hub satisfies it.
type Notifier interface {
	Notify(event websocket.Event)
}

// NopNotifier discards events; used where no hub is wired.
type NopNotifier struct{}

func (NopNotifier) Notify(websocket.Event) {}
