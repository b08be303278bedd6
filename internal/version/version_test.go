package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestShortRevision(t *testing.T) {
	tests := []struct {
		rev   string
		dirty bool
		want  string
	}{
		{"0123456789abcdef", false, "0123456"},
		{"0123456789abcdef", true, "0123456-dirty"},
		{"abc", false, "abc"},
	}

	for _, tt := range tests {
		if got := shortRevision(tt.rev, tt.dirty); got != tt.want {
			t.Errorf("shortRevision(%q, %v) = %q, want %q", tt.rev, tt.dirty, got, tt.want)
		}
	}
}

func TestGet(t *testing.T) {
	info := Get()
	if info.Version == "" || info.Commit == "" {
		t.Errorf("Get() = %+v, want populated version and commit", info)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
	if !strings.Contains(Full(), info.Commit) {
		t.Errorf("Full() = %q, want commit %q", Full(), info.Commit)
	}
}
