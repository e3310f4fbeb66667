// Package metrics exports folio page events as Prometheus metrics.
//
// A Recorder is an EventSink. Install it on a page, alone or next to other
// sinks with folio.Sinks, and serve its registry with HTTPHandler.
package metrics
