// Package ecs provides ECS adapters for pointedit's change events.
//
// The primary adapter is [NewDonburiSink], which bridges editor change events
// (every dispatched pointer, wheel, delete and restart event together with the
// resulting snapshot) into a [Donburi] world as typed events. Subscribe to
// [ChangeEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world, ecs.ChangesOnly())
//	editor.SetChangeSink(sink)
//	ecs.SubscribeSnapshots(world, func(w donburi.World, snap pointedit.Snapshot) {
//		// mirror snap.Entities into the world
//	})
//
// [ChangesOnly] drops events that left the snapshot unchanged, which keeps
// per-frame pointer moves over empty space out of the event queue.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
