// Package capture models the shared LED region the hook publishes to and the
// capture files recorded from it.
//
// # Frame Layout
//
// A Frame holds all ten strips back to back in strip index order, three bytes
// per LED, 1284 bytes in total. Frame.Strip returns one strip's window.
//
// # Capture Files
//
// A capture file (.sdvxcap) is a plain sequence of records with no header:
//
//	+----------------------+------------------------+
//	| timestamp (8 bytes)  | frame (1284 bytes)     |
//	| float64, LE, seconds |                        |
//	+----------------------+------------------------+
//
// Reader.Next returns io.EOF after the last complete record and
// ErrShortFrame if the file ends partway through one.
//
// # Statistics
//
// Stats accumulates per-strip averages over frames. Comparing the statistics
// of two captures with Suggest yields configuration keys that bring the
// second closer to the first.
package capture
