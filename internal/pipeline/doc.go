// Package pipeline applies a resolved strip transform to raw LED data.
//
// Apply works on one strip buffer in place. Each LED triplet goes through the
// same four stages, always in this order:
//
//  1. Channel reorder
//  2. Per-channel gamma lookup
//  3. Static colour (optionally a gradient) or hue/saturation adjustment
//  4. Brightness scaling
//
// The stages do not commute. Gamma runs before the HSV stage so that a static
// colour inherits the corrected brightness of each pixel, and brightness runs
// last so it scales whatever colour the third stage produced.
//
// A strip whose transform is inactive is returned untouched without reading
// the buffer.
//
// Processor ties Apply to a snapshot source. It is the boundary where the
// interception layer hands over (index, buffer) pairs, so it rejects unknown
// strip indices and wrongly sized buffers instead of trusting them:
//
//	p := pipeline.NewProcessor(scheduler)
//	if err := p.Process(index, buf); err != nil {
//	    // pass buf through unchanged
//	}
//
// Neither Apply nor a successful Process allocates.
package pipeline
