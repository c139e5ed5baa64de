package fileseq

import (
	"fmt"
	"strings"
)

// FileSequence pairs a FrameSet with a filename prefix and suffix, such as
// "render.1-100#.exr" naming a hundred files sharing a dirname, basename,
// and extension.
type FileSequence struct {
	prefix   string
	suffix   string
	dirname  string
	basename string
	frameSet FrameSet
}

// NewFileSequence builds a FileSequence from an already-formed prefix,
// suffix, and frame set.
func NewFileSequence(prefix, suffix string, fs FrameSet) (FileSequence, error) {
	var f FileSequence
	if err := f.SetPrefix(prefix); err != nil {
		return FileSequence{}, err
	}
	if err := f.SetSuffix(suffix); err != nil {
		return FileSequence{}, err
	}
	f.frameSet = fs
	return f, nil
}

// Prefix, Suffix, Dirname, and Basename expose the sequence's filename
// components.
func (f FileSequence) Prefix() string   { return f.prefix }
func (f FileSequence) Suffix() string   { return f.suffix }
func (f FileSequence) Dirname() string  { return f.dirname }
func (f FileSequence) Basename() string { return f.basename }

// FrameSet returns the sequence's frame set.
func (f FileSequence) FrameSet() FrameSet { return f.frameSet }

// Size returns the number of frames, equivalently filenames, in f.
func (f FileSequence) Size() int64 { return f.frameSet.Size() }

// Nearest returns the frames in f's frame set nearest to, but not equal
// to, frame.
func (f FileSequence) Nearest(frame int32) (left, right Neighbor) {
	return f.frameSet.Nearest(frame)
}

// SetPrefix rewrites the prefix, re-deriving dirname and basename. The
// prefix must be empty, end with '/' (dirname only, no basename), or end
// with '.' (dirname plus a non-empty basename).
func (f *FileSequence) SetPrefix(s string) error {
	switch {
	case s == "":
		f.prefix, f.dirname, f.basename = "", "", ""
		return nil
	case strings.HasSuffix(s, "/"):
		f.prefix, f.dirname, f.basename = s, s, ""
		return nil
	case strings.HasSuffix(s, "."):
		body := s[:len(s)-1]
		dirname, basename := "", body
		if idx := strings.LastIndex(body, "/"); idx >= 0 {
			dirname, basename = body[:idx+1], body[idx+1:]
		}
		if basename == "" {
			return fmt.Errorf("%w: prefix basename must not be empty", ErrInvalidField)
		}
		f.prefix, f.dirname, f.basename = s, dirname, basename
		return nil
	default:
		return fmt.Errorf("%w: prefix %q must be empty or end with '/' or '.'", ErrInvalidField, s)
	}
}

// SetDirname rewrites the dirname component, which must be empty or end
// with '/', and rebuilds prefix.
func (f *FileSequence) SetDirname(s string) error {
	if s != "" && !strings.HasSuffix(s, "/") {
		return fmt.Errorf("%w: dirname %q must be empty or end with '/'", ErrInvalidField, s)
	}
	f.dirname = s
	f.rebuildPrefix()
	return nil
}

// SetBasename rewrites the basename component, which must be non-empty
// and contain no '/', and rebuilds prefix.
func (f *FileSequence) SetBasename(s string) error {
	if s == "" || strings.Contains(s, "/") {
		return fmt.Errorf("%w: basename %q must be non-empty and contain no '/'", ErrInvalidField, s)
	}
	f.basename = s
	f.rebuildPrefix()
	return nil
}

// SetSuffix rewrites the suffix, which must be empty or start with '.'.
func (f *FileSequence) SetSuffix(s string) error {
	if s != "" && !strings.HasPrefix(s, ".") {
		return fmt.Errorf("%w: suffix %q must be empty or start with '.'", ErrInvalidField, s)
	}
	f.suffix = s
	return nil
}

func (f *FileSequence) rebuildPrefix() {
	if f.basename == "" {
		f.prefix = f.dirname
	} else {
		f.prefix = f.dirname + f.basename + "."
	}
}

// Frame materializes the filename for a given frame number.
func (f FileSequence) Frame(frame int32) (string, error) {
	if f.frameSet.Size() > 0 {
		if ok, _ := f.frameSet.Contains(frame); !ok {
			return "", fmt.Errorf("%w: frame %d is not in the sequence", ErrOutOfRange, frame)
		}
	}
	pad := f.frameSet.Padding()
	if !pad.IsValid() {
		pad = Padding{explicit: false, digits: 1}
	}
	return f.prefix + pad.FormatFrame(frame) + f.suffix, nil
}

// At materializes the filename for the i-th frame in range order.
func (f FileSequence) At(i int64) (string, error) {
	frame, err := f.frameSet.At(i)
	if err != nil {
		return "", err
	}
	return f.Frame(frame)
}

// Equal compares prefix, suffix, and frame set. Frame-set equality uses
// padding compatibility rather than strict equality.
func (f FileSequence) Equal(other FileSequence) bool {
	return f.prefix == other.prefix && f.suffix == other.suffix && f.frameSet.Equal(other.frameSet)
}

// Equal reports whether fs and other denote the same ordered frames and
// have combine-compatible padding.
func (fs FrameSet) Equal(other FrameSet) bool {
	if !CombinePadding(fs.padding, other.padding).IsValid() {
		return false
	}
	return fs.String() == other.String()
}

// Merge composes the underlying frame sets, failing unless prefix and
// suffix match exactly.
func (f FileSequence) Merge(other FileSequence) (FileSequence, error) {
	if f.prefix != other.prefix || f.suffix != other.suffix {
		return FileSequence{}, fmt.Errorf("%w: %q/%q vs %q/%q", ErrMergeMismatch, f.prefix, f.suffix, other.prefix, other.suffix)
	}
	merged, err := f.frameSet.Merge(other.frameSet)
	if err != nil {
		return FileSequence{}, err
	}
	result := f
	result.frameSet = merged
	return result, nil
}

// MergeMultiple composes others into f as a batch, failing unless every
// prefix and suffix matches exactly.
func (f FileSequence) MergeMultiple(others []FileSequence) (FileSequence, error) {
	sets := make([]FrameSet, 0, len(others))
	for _, other := range others {
		if f.prefix != other.prefix || f.suffix != other.suffix {
			return FileSequence{}, fmt.Errorf("%w: %q/%q vs %q/%q", ErrMergeMismatch, f.prefix, f.suffix, other.prefix, other.suffix)
		}
		sets = append(sets, other.frameSet)
	}
	merged, err := f.frameSet.MergeMultiple(sets)
	if err != nil {
		return FileSequence{}, err
	}
	result := f
	result.frameSet = merged
	return result, nil
}

func (f FileSequence) String() string {
	return f.prefix + f.frameSet.String() + paddingTokens(f.frameSet.Padding()) + f.suffix
}

// paddingTokens reserializes an explicit padding width to minimal '#'
// (width 4) and '@' (width 1) tokens. Implicit padding emits no tokens.
func paddingTokens(p Padding) string {
	if !p.IsValid() || !p.explicit {
		return ""
	}
	w := int(p.digits)
	return strings.Repeat("#", w/4) + strings.Repeat("@", w%4)
}

// IsFileSequence reports whether s parses as a FileSequence.
func IsFileSequence(s string) bool {
	_, err := ParseFileSequence(s)
	return err == nil
}

// ParseFileSequence parses s per the package's sequence grammar:
//
//	sequence := prefix? frameset? padtokens? suffix?
//	prefix   := dirpart? basepart '.'
//	frameset := as per FrameSet's grammar
//	padtokens:= [#@]+
//	suffix   := '.' (any non-slash chars)
//
// A basepart candidate that is purely numeric is rejected, so that e.g.
// "1000.2000" is read as frame 1000 with suffix ".2000" rather than
// basename "1000" with frame 2000. IsFileSequence(s) (equivalently,
// err == nil here) additionally requires a frame set or padding tokens to
// be present; IsFileSequence("") is false.
func ParseFileSequence(s string) (FileSequence, error) {
	dirname, rest := splitDirname(s)
	basename, afterDot, hasBasename := splitBasename(rest)

	tailSrc := rest
	if hasBasename {
		tailSrc = afterDot
	} else {
		basename = ""
	}

	framesetStr, padStr, suffix, err := parseSequenceTail(tailSrc)
	if err != nil {
		return FileSequence{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}
	if framesetStr == "" && padStr == "" {
		return FileSequence{}, fmt.Errorf("%w: %q has no frame set or padding tokens", ErrParse, s)
	}

	var fs FrameSet
	if framesetStr != "" {
		fs, err = ParseFrameSet(framesetStr)
		if err != nil {
			return FileSequence{}, err
		}
	}
	if width := 4*strings.Count(padStr, "#") + strings.Count(padStr, "@"); width > 1 {
		fs.SetPadding(Padding{explicit: true, digits: uint32(width)})
	}

	var prefix string
	if basename != "" {
		prefix = dirname + basename + "."
	} else {
		prefix = dirname
	}
	return FileSequence{prefix: prefix, suffix: suffix, dirname: dirname, basename: basename, frameSet: fs}, nil
}

// splitDirname splits s at its last '/', inclusive of the slash.
func splitDirname(s string) (dirname, rest string) {
	if idx := strings.LastIndex(s, "/"); idx >= 0 {
		return s[:idx+1], s[idx+1:]
	}
	return "", s
}

// splitBasename finds the earliest dot in rest whose preceding segment is
// non-empty and not purely numeric and whose following text starts with a
// frame set or padding tokens, and splits there. The basename may itself
// contain dots.
func splitBasename(rest string) (basename, afterDot string, ok bool) {
	for i := 0; i < len(rest); i++ {
		if rest[i] != '.' {
			continue
		}
		candidate := rest[:i]
		if candidate == "" || isAllDigits(candidate) {
			continue
		}
		if frameset, pad, _, err := parseSequenceTail(rest[i+1:]); err == nil && (frameset != "" || pad != "") {
			return candidate, rest[i+1:], true
		}
	}
	return "", rest, false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseSequenceTail splits s into a frameset run, a padding-token run, and
// a trailing suffix. The remainder after the padding-token run must be
// empty or start with '.'.
func parseSequenceTail(s string) (frameset, padtokens, suffix string, err error) {
	i := 0
	for i < len(s) && isFrameSetChar(s[i]) {
		i++
	}
	frameset = s[:i]
	j := i
	for j < len(s) && (s[j] == '#' || s[j] == '@') {
		j++
	}
	padtokens = s[i:j]
	rest := s[j:]
	if rest == "" {
		return frameset, padtokens, "", nil
	}
	if rest[0] != '.' {
		return "", "", "", fmt.Errorf("unexpected trailing text %q", rest)
	}
	return frameset, padtokens, rest, nil
}

func isFrameSetChar(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == 'x' || c == 'y' || c == ':' || c == ',' || c == '-':
		return true
	default:
		return false
	}
}
