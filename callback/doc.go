// Package callback delivers asynchronous platform events to
// registered consumers.
//
// The platform runtime emits events as fixed-size binary payloads
// tagged by a stable small-integer kind identifier. The host
// application drives the pump: it repeatedly collects raw events from
// the runtime and hands each one to Dispatcher.Deliver on a thread of
// its choosing. Delivery is single-threaded and FIFO; no two handlers
// run concurrently, and handlers must not retain the payload slice
// past the call.
//
// A payload whose size does not match the declared kind size is a
// protocol integrity violation and is rejected before any handler
// sees it.
package callback
