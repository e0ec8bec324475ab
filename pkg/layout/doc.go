// Package layout holds the render tree: render objects created by widgets
// and the PipelineOwner that decides when a frame needs to be repainted.
package layout
