package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"time"

	"gopkg.in/ini.v1"

	"github.com/muurk/sdvxrgb/internal/strip"
)

// GlobalSection is the section every strip inherits from.
const GlobalSection = "global"

// loadOptions mirror how the editing tools and the Windows profile API
// treat the file: no inline comments ('#' starts a colour), no continuation
// lines, '=' as the only delimiter, case-insensitive keys, case-sensitive
// section names, and junk lines skipped instead of failing the whole file.
// A repeated key keeps its first value. Lines go-ini cannot skip on its own
// are handled by tolerateLines.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	SkipUnrecognizableLines: true,
	InsensitiveKeys:         true,
	KeyValueDelimiters:      "=",
	AllowShadows:            true,
}

// iniSection adapts an ini section to values. A nil section has no keys.
type iniSection struct {
	sec *ini.Section
}

func (s iniSection) lookup(key string) (string, bool) {
	if s.sec == nil {
		return "", false
	}
	k, err := s.sec.GetKey(key)
	if err != nil {
		return "", false
	}
	return k.Value(), true
}

func sectionOf(f *ini.File, name string) iniSection {
	sec, err := f.GetSection(name)
	if err != nil {
		return iniSection{}
	}
	return iniSection{sec: sec}
}

// unnamedSection replaces "[]" headers, which go-ini refuses. No strip
// reads it.
const unnamedSection = "[unnamed]"

var utf8BOM = []byte("\xef\xbb\xbf")

// tolerateLines rewrites the lines go-ini would reject as a whole-file error
// so that each bad line only affects itself, as with the profile API:
//
//   - a key starting with a quote or backtick, or an empty key, is dropped;
//     no recognised key looks like that
//   - a value starting with """ or a backtick becomes a lone '"', which keeps
//     the key present but unparsable instead of opening a multi-line value
//   - an unterminated "[section" header is dropped, so the keys after it stay
//     in the previous section
//   - "[]" becomes a section no strip reads
func tolerateLines(data []byte) []byte {
	data = bytes.TrimPrefix(data, utf8BOM)
	lines := bytes.Split(data, []byte("\n"))
	out := make([][]byte, 0, len(lines))

	for _, raw := range lines {
		line := bytes.TrimSpace(raw)
		switch {
		case len(line) == 0, line[0] == ';', line[0] == '#':
			out = append(out, raw)

		case line[0] == '[':
			end := bytes.LastIndexByte(line, ']')
			switch {
			case end < 0:
			case len(bytes.TrimSpace(line[1:end])) == 0:
				out = append(out, []byte(unnamedSection))
			default:
				out = append(out, raw)
			}

		default:
			key, value, found := bytes.Cut(line, []byte("="))
			key = bytes.TrimSpace(key)
			value = bytes.TrimSpace(value)
			switch {
			case len(key) == 0, key[0] == '"', key[0] == '`':
			case found && len(value) > 0 && (bytes.HasPrefix(value, []byte(`"""`)) || value[0] == '`'):
				out = append(out, []byte(string(key)+`="`))
			default:
				out = append(out, raw)
			}
		}
	}
	return bytes.Join(out, []byte("\n"))
}

// Load reads and resolves the configuration file at path.
//
// A missing file is not an error: it yields Identity(). A failure to stat or
// read the file returns a *SourceError so the caller can keep its previous
// snapshot. Malformed lines never fail the load.
func Load(path string) (*Snapshot, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Identity(), nil
	}
	if err != nil {
		return nil, &SourceError{Path: path, Op: OpStat, Err: err}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Identity(), nil
	}
	if err != nil {
		return nil, &SourceError{Path: path, Op: OpRead, Err: err}
	}

	snap, err := Parse(data, info.ModTime())
	if err != nil {
		return nil, &SourceError{Path: path, Op: OpParse, Err: err}
	}
	return snap, nil
}

// Parse resolves configuration text into a snapshot stamped with modTime.
// Bad lines and bad values fall back individually; the error is reserved for
// a tokeniser failure on text that tolerateLines has already cleaned.
func Parse(data []byte, modTime time.Time) (*Snapshot, error) {
	f, err := ini.LoadSources(loadOptions, tolerateLines(data))
	if err != nil {
		return nil, err
	}

	global := NewStripTransform(resolveParams(sectionOf(f, GlobalSection), IdentityParams()))

	var strips [strip.Count]StripTransform
	for _, id := range strip.All() {
		strips[id] = NewStripTransform(resolveParams(sectionOf(f, id.Name()), global.Params()))
	}

	return NewSnapshot(global, strips, modTime), nil
}
