// Package config resolves the sdvxrgb.ini transform configuration into
// immutable snapshots.
//
// The configuration file is plain INI text with one [global] section and one
// section per strip, named after the strip (see package strip):
//
//	[global]
//	brightness=80
//
//	[title]
//	channel_order=GRB
//	gamma_r=2.2
//	static_color=#8000FF
//	gradient_color=00FF80
//
// # Resolution
//
// Every field resolves independently. [global] fields fall back to the
// identity value (RGB, gamma 1.0, hue 0, saturation 100, brightness 100, no
// colours). Strip fields fall back to the resolved [global] value, so a strip
// section only needs the keys it overrides. Unknown keys are ignored.
//
// A malformed value is never an error. It behaves exactly like a missing key
// and falls through to the inherited value, with one exception that the
// editing tools rely on: a channel_order that is present but not one of the
// six tokens resolves to RGB rather than to the inherited order.
//
// # Snapshots
//
// A Snapshot holds the resolved StripTransform for each of the ten strips,
// including derived gamma tables and the "active" flag used by the pipeline's
// fast path. Snapshots are never modified after construction; a reload builds
// a new one and swaps it in as a whole.
//
// # Errors
//
// A missing file yields the identity snapshot and no error. The only error
// Load returns is a *SourceError, for a file that exists but cannot be
// stat'ed or read. A malformed line, like a malformed value, only affects
// itself.
package config
