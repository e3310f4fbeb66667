// Package ecs provides ECS adapters for folio.
package ecs

import (
	"github.com/phanxgames/folio"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// PageEventType is the Donburi event type for folio events.
// Subscribe to this in your ECS systems to receive visibility, sequencing,
// scroll, nav, and cursor changes.
var PageEventType = events.NewEventType[folio.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Events are published to PageEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) folio.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) Emit(event folio.Event) {
	PageEventType.Publish(s.world, event)
}

// ElementState is the component the Mirror keeps on each element entity.
type ElementState struct {
	ID       string
	InView   bool
	Phase    folio.Phase
	Starts   int
	Resets   int
	LastSeen folio.EventType
}

// ElementComponent is the Donburi component type holding ElementState.
var ElementComponent = donburi.NewComponentType[ElementState]()

// Mirror is an EventSink that reflects per-element events into entities.
// Events without an element id (scroll, nav, cursor) are ignored.
type Mirror struct {
	world    donburi.World
	entities map[string]donburi.Entity
	query    *donburi.Query
}

// NewMirror creates a Mirror writing into world.
func NewMirror(world donburi.World) *Mirror {
	return &Mirror{
		world:    world,
		entities: make(map[string]donburi.Entity),
		query:    donburi.NewQuery(filter.Contains(ElementComponent)),
	}
}

// Emit updates the entity for event.ElementID, creating it on first sight.
func (m *Mirror) Emit(event folio.Event) {
	switch event.Type {
	case folio.EventEnterView, folio.EventExitView, folio.EventSequenceStart, folio.EventSequenceReset:
	default:
		return
	}
	if event.ElementID == "" {
		return
	}
	entry := m.entry(event.ElementID)
	st := ElementComponent.Get(entry)
	st.LastSeen = event.Type
	switch event.Type {
	case folio.EventEnterView:
		st.InView = true
	case folio.EventExitView:
		st.InView = false
	case folio.EventSequenceStart:
		st.Phase = folio.PhaseVisible
		st.Starts++
	case folio.EventSequenceReset:
		st.Phase = folio.PhaseHidden
		st.Resets++
	}
}

func (m *Mirror) entry(id string) *donburi.Entry {
	if e, ok := m.entities[id]; ok && m.world.Valid(e) {
		return m.world.Entry(e)
	}
	e := m.world.Create(ElementComponent)
	entry := m.world.Entry(e)
	ElementComponent.SetValue(entry, ElementState{ID: id})
	m.entities[id] = e
	return entry
}

// Lookup returns the mirrored state for an element.
func (m *Mirror) Lookup(id string) (ElementState, bool) {
	e, ok := m.entities[id]
	if !ok || !m.world.Valid(e) {
		return ElementState{}, false
	}
	return *ElementComponent.Get(m.world.Entry(e)), true
}

// InView returns the ids of mirrored elements currently in view.
func (m *Mirror) InView() []string {
	var out []string
	m.query.Each(m.world, func(entry *donburi.Entry) {
		if st := ElementComponent.Get(entry); st.InView {
			out = append(out, st.ID)
		}
	})
	return out
}

// Len returns the number of mirrored elements.
func (m *Mirror) Len() int {
	return m.query.Count(m.world)
}
