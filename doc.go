// Package folio is the animation orchestration layer for scroll-driven
// single-page sites.
//
// Folio decides, from raw host signals (scroll position, element
// visibility, pointer position, clicks), which visual state each animated
// element should be in and when transitions fire. Painting is left to the
// host: a browser bridge, an [Ebitengine] game, or a terminal. The host
// feeds signals in and reads computed states out each frame.
//
// # Quick start
//
// Load declarative content, mount it on a [Page], and forward signals:
//
//	content, err := folio.LoadContentFile("content.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	page := folio.NewPage(folio.PageOptions{Nav: content.Nav})
//	if err := page.MountContent(content); err != nil {
//		log.Print(err) // misconfigured sections are mounted inert
//	}
//	page.SetViewport(1280, 800)
//
//	// from the host's event loop:
//	page.OnScroll(scrollY)
//	page.OnPointerMove(x, y)
//	page.Update(dt)
//
// # Controllers
//
// A page owns five independent controllers, each usable on its own:
//
//   - [VisibilityMonitor]: in-view tracking per threshold, with an optional
//     trigger-once latch.
//   - [Sequencer]: expands a container's hidden/visible intent into
//     staggered per-child transitions, tweened with [gween].
//   - [ScrollTransformController]: parallax offsets, exactly scrollY*factor.
//   - [PointerTracker]: cursor overlay position, visibility, and hover over
//     possibly overlapping interactive regions.
//   - [NavState]: the navigation bar's scrolled and mobile-menu flags.
//
// Scroll consumers share one [ScrollMetrics] per page. It attaches the
// host's listener on the first subscription and detaches it on the last.
//
// # Handles
//
// Every registration returns a handle with its own Dispose. Dispose is
// idempotent, and operations through a disposed handle are silent no-ops,
// so late host callbacks after unmount are harmless.
//
// # Threading
//
// Folio is single-threaded. Each signal is handled to completion before the
// next, and no locks are taken. Hosts with multiple goroutines must funnel
// signals through one.
//
// # Events
//
// Set an [EventSink] with [Page.SetEventSink] to receive every state change.
// The metrics subpackage counts them with Prometheus and the ecs module
// publishes them into a Donburi world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package folio
