// Package engine drives a mounted widget tree headlessly.
//
// A Session owns the BuildOwner and the root element. Input arrives as
// activations (a control label) or as callbacks queued with Dispatch; each is
// followed by a frame that flushes pending builds and, if anything visible
// changed, hands the render tree to the paint handler.
//
// Sessions are not safe for concurrent use except for Dispatch, which may be
// called from any goroutine.
package engine
