// Package logging provides structured logging for sdvxrgb.
//
// This package wraps a zap logger with package-level helpers. The core runs
// inside another process's real-time thread, so the logger is silent unless a
// level is passed to Initialize or SDVXRGB_LOG_LEVEL is set.
//
// # Log Levels
//
//   - Debug: Snapshot contents, rejected buffers at the hook boundary
//   - Info: Config reloads and resets
//   - Warn: Config files that exist but cannot be read
//   - Error: CLI failures
//
// Nothing is logged per pixel or per steady-state strip update.
//
// # Reload Logging
//
//	logging.LogReload(path, logging.EventLoaded, zap.Time("mod_time", t))
//	logging.LogReload(path, logging.EventLoadFailed, zap.Error(err))
//	logging.LogSnapshot(path, []string{"title", "woofer"})
//
// # Configuration
//
//	if err := logging.Initialize(levelFlag); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// Output goes to stderr in console format so it never mixes with command
// output on stdout.
package logging
