// Package ecs provides ECS adapters for pointedit.
package ecs

import (
	"github.com/phanxgames/pointedit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ChangeEventType is the Donburi event type for editor change events.
// Subscribe to this in your ECS systems to receive editor snapshots.
var ChangeEventType = events.NewEventType[pointedit.ChangeEvent]()

// SinkOption configures a sink created by NewDonburiSink.
type SinkOption func(*donburiSink)

// ChangesOnly makes the sink skip events whose snapshot equals the last
// published one, such as stray releases or hover over empty space. The first
// event is always published.
func ChangesOnly() SinkOption {
	return func(s *donburiSink) {
		s.changesOnly = true
	}
}

type donburiSink struct {
	world       donburi.World
	changesOnly bool
	published   bool
	last        pointedit.Snapshot
}

// NewDonburiSink creates a ChangeSink backed by a Donburi world.
// Change events are published to ChangeEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World, opts ...SinkOption) pointedit.ChangeSink {
	s := &donburiSink{world: world}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *donburiSink) EmitChange(event pointedit.ChangeEvent) {
	if s.changesOnly && s.published && s.last.Equal(event.Snapshot) {
		return
	}
	s.published = true
	s.last = event.Snapshot
	ChangeEventType.Publish(s.world, event)
}

// SubscribeSnapshots subscribes fn to the snapshot of every change event
// published in world. Use it from systems that only render or persist the
// editor state and do not care which event produced it.
func SubscribeSnapshots(world donburi.World, fn func(w donburi.World, snap pointedit.Snapshot)) {
	ChangeEventType.Subscribe(world, func(w donburi.World, e pointedit.ChangeEvent) {
		fn(w, e.Snapshot)
	})
}
