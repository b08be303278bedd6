package reload

import (
	"errors"
	"io/fs"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/sdvxrgb/internal/config"
	"github.com/muurk/sdvxrgb/internal/logging"
)

// DefaultInterval is the number of Tick calls between file checks. At the
// rate the game updates its strips this is a few seconds.
const DefaultInterval = 300

// Outcome describes what a Check did.
type Outcome int

const (
	// Unchanged means the file's modification time matched, or the file is
	// still missing.
	Unchanged Outcome = iota
	// Loaded means a new snapshot was installed.
	Loaded
	// Reset means the file disappeared and the identity snapshot was
	// installed.
	Reset
	// Failed means the file could not be used; the previous snapshot stays.
	Failed
	// Busy means another check was already running.
	Busy
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Loaded:
		return "loaded"
	case Reset:
		return "reset"
	case Failed:
		return "failed"
	case Busy:
		return "busy"
	default:
		return "unknown"
	}
}

// Config configures a Scheduler.
type Config struct {
	// Path is the configuration file to follow.
	Path string
	// Interval is the number of ticks between checks. Zero or negative
	// means DefaultInterval.
	Interval int
}

// Scheduler owns the active configuration snapshot and replaces it when the
// file changes. Snapshot may be called from any goroutine; a published
// snapshot is never modified.
type Scheduler struct {
	path     string
	interval uint32
	counter  atomic.Uint32
	snap     atomic.Pointer[config.Snapshot]

	mu      sync.Mutex // held during Check
	modTime time.Time  // of the loaded file, zero when none is loaded
}

// NewScheduler creates a scheduler serving the identity snapshot. It does not
// touch the file system; call Check to perform the initial load.
func NewScheduler(cfg Config) *Scheduler {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	s := &Scheduler{
		path:     cfg.Path,
		interval: uint32(interval),
	}
	s.snap.Store(config.Identity())
	return s
}

// Path returns the followed configuration file.
func (s *Scheduler) Path() string { return s.path }

// Interval returns the number of ticks between checks.
func (s *Scheduler) Interval() int { return int(s.interval) }

// Snapshot returns the active snapshot.
func (s *Scheduler) Snapshot() *config.Snapshot {
	return s.snap.Load()
}

// Tick counts one pipeline invocation and runs Check every Interval calls.
// Between checks it costs one atomic increment.
func (s *Scheduler) Tick() {
	if s.counter.Add(1) < s.interval {
		return
	}
	s.counter.Store(0)
	_, _ = s.Check()
}

// Check compares the file's modification time with the loaded one and
// reloads or resets as needed. The returned error is set only for Failed.
func (s *Scheduler) Check() (Outcome, error) {
	if !s.mu.TryLock() {
		return Busy, nil
	}
	defer s.mu.Unlock()

	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if s.modTime.IsZero() {
			return Unchanged, nil
		}
		s.modTime = time.Time{}
		s.snap.Store(config.Identity())
		logging.LogReload(s.path, logging.EventReset)
		return Reset, nil
	}
	if err != nil {
		logging.LogReload(s.path, logging.EventStatFailed, zap.Error(err))
		return Failed, &config.SourceError{Path: s.path, Op: config.OpStat, Err: err}
	}

	if info.ModTime().Equal(s.modTime) {
		return Unchanged, nil
	}

	snap, err := config.Load(s.path)
	if err != nil {
		logging.LogReload(s.path, logging.EventLoadFailed, zap.Error(err))
		return Failed, err
	}

	s.snap.Store(snap)
	s.modTime = snap.ModTime()

	active := snap.ActiveStrips()
	logging.LogReload(s.path, logging.EventLoaded,
		zap.Time("mod_time", s.modTime),
		zap.Int("active_strips", len(active)),
	)
	if len(active) > 0 {
		names := make([]string, len(active))
		for i, id := range active {
			names[i] = id.Name()
		}
		logging.LogSnapshot(s.path, names)
	}
	return Loaded, nil
}
