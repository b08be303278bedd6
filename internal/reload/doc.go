// Package reload keeps the active configuration snapshot in step with the
// file on disk.
//
// A Scheduler sits on the strip update path. Tick is called once per strip
// update and only every Interval calls does it stat the file:
//
//	s := reload.NewScheduler(reload.Config{Path: path})
//	s.Check() // initial load
//	...
//	s.Tick()
//	snap := s.Snapshot()
//
// Check rules:
//   - File missing and nothing loaded: nothing happens.
//   - File missing after a load: the identity snapshot is installed once.
//   - Modification time unchanged: nothing happens, even if the content
//     differs.
//   - Modification time changed: the file is loaded and the new snapshot
//     replaces the old one in a single pointer swap. If loading fails the
//     old snapshot and modification time stay, so the next check retries.
//
// Watcher is for interactive tools. It reports file system events for the
// configuration file so the caller can run Check right away instead of
// waiting for the tick counter.
package reload
