// Package ecs provides ECS adapters for folio's event stream.
//
// [NewDonburiStore] publishes every folio event into a [Donburi] world as a
// typed event. Subscribe to [PageEventType] in your ECS systems to receive
// them. [NewMirror] keeps one entity per animated element with an
// [ElementState] component, for systems that would rather query state than
// react to events.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	mirror := ecs.NewMirror(world)
//	page.SetEventSink(folio.Sinks(store, mirror))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
