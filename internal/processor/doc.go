// Package processor runs the upload-to-result lifecycle.
//
// A Controller owns a single processing slot: Submit creates the pending
// record and starts a tick goroutine that advances a simulated progress
// percentage, holds a short grace delay at 100%, probes the image's actual
// dimensions, and publishes the completed record back into the feed. The
// tick timer is scoped to the cycle and torn down by completion or Close;
// no callback outlives the controller.
//
// Randomness and progress observation are injectable so tests can pin exact
// tick sequences instead of relying on wall-clock behavior.
package processor
