package fileseq

import (
	"fmt"
	"sort"
	"strings"
)

// FrameSet is an ordered list of FrameRanges sharing a single padding,
// such as the comma-separated ranges of "1-10,20,30-40x2".
type FrameSet struct {
	ranges  []FrameRange
	padding Padding
}

// Append adds r to the set, combining r's padding with the set's and
// propagating the combined padding to every range, including r. An empty
// set adopts r's padding unmodified.
func (fs *FrameSet) Append(r FrameRange) error {
	if len(fs.ranges) == 0 {
		fs.padding = r.padding
		fs.ranges = append(fs.ranges, r)
		return nil
	}
	combined := CombinePadding(fs.padding, r.padding)
	if !combined.IsValid() {
		return fmt.Errorf("%w: cannot append range with incompatible padding", ErrPaddingMismatch)
	}
	for i := range fs.ranges {
		fs.ranges[i] = fs.ranges[i].WithPadding(combined)
	}
	fs.padding = combined
	fs.ranges = append(fs.ranges, r.WithPadding(combined))
	return nil
}

// Padding returns the set's shared padding.
func (fs FrameSet) Padding() Padding {
	return fs.padding
}

// SetPadding overwrites the set's padding and propagates it to every
// contained range, bypassing the combine-compatibility check Append uses.
// Used when textual padding tokens override a frameset's guessed padding.
func (fs *FrameSet) SetPadding(p Padding) {
	fs.padding = p
	for i := range fs.ranges {
		fs.ranges[i] = fs.ranges[i].WithPadding(p)
	}
}

// Ranges returns a defensive copy of the set's constituent ranges.
func (fs FrameSet) Ranges() []FrameRange {
	out := make([]FrameRange, len(fs.ranges))
	copy(out, fs.ranges)
	return out
}

// Size returns the total number of frames across all ranges.
func (fs FrameSet) Size() int64 {
	var total int64
	for _, r := range fs.ranges {
		total += r.Size()
	}
	return total
}

// At returns the i-th frame of the set in range order. Negative i wraps
// from the end.
func (fs FrameSet) At(i int64) (int32, error) {
	n := fs.Size()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: index out of range", ErrOutOfRange)
	}
	for _, r := range fs.ranges {
		sz := r.Size()
		if i < sz {
			return r.At(i)
		}
		i -= sz
	}
	return 0, fmt.Errorf("%w: index out of range", ErrOutOfRange)
}

// Contains reports whether frame belongs to the set, and its flattened
// index across all ranges when it does.
func (fs FrameSet) Contains(frame int32) (bool, int64) {
	var base int64
	for _, r := range fs.ranges {
		if ok, idx := r.Contains(frame); ok {
			return true, base + idx
		}
		base += r.Size()
	}
	return false, 0
}

// Nearest unions the per-range nearest results: the overall left is the
// maximum of the per-range lefts, the overall right the minimum of the
// per-range rights.
func (fs FrameSet) Nearest(frame int32) (left, right Neighbor) {
	for _, r := range fs.ranges {
		l, rr := r.Nearest(frame)
		if l.Has && (!left.Has || l.Frame > left.Frame) {
			left = l
		}
		if rr.Has && (!right.Has || rr.Frame < right.Frame) {
			right = rr
		}
	}
	return left, right
}

// IsNormal is a fast guard for the common already-compact case: empty, or
// a single non-inverted, non-interleaved range with a non-negative step
// that does not span exactly two frames.
func (fs FrameSet) IsNormal() bool {
	if len(fs.ranges) == 0 {
		return true
	}
	if len(fs.ranges) != 1 {
		return false
	}
	r := fs.ranges[0]
	return r.step >= 0 && !r.invertStep && r.interleave == 0 &&
		int64(r.outTime) != int64(r.inTime)+int64(r.step)
}

// ParseFrameSet parses a comma-separated list of frame ranges.
func ParseFrameSet(s string) (FrameSet, error) {
	if s == "" {
		return FrameSet{}, fmt.Errorf("%w: empty frame set", ErrParse)
	}
	var fs FrameSet
	for _, part := range strings.Split(s, ",") {
		if part == "" {
			return FrameSet{}, fmt.Errorf("%w: empty range in frame set %q", ErrParse, s)
		}
		r, err := ParseFrameRange(part)
		if err != nil {
			return FrameSet{}, err
		}
		if err := fs.Append(r); err != nil {
			return FrameSet{}, err
		}
	}
	return fs, nil
}

// IsFrameSet reports whether s parses as a comma-separated frame set.
func IsFrameSet(s string) bool {
	_, err := ParseFrameSet(s)
	return err == nil
}

func (fs FrameSet) String() string {
	parts := make([]string, 0, len(fs.ranges))
	for _, r := range fs.ranges {
		if r.Size() == 0 {
			continue
		}
		parts = append(parts, r.String())
	}
	return strings.Join(parts, ",")
}

// Merge combines fs with other, taking a fast in-place extension path when
// other is a single frame immediately following fs's trailing range, and
// falling back to append-then-normalize otherwise.
func (fs FrameSet) Merge(other FrameSet) (FrameSet, error) {
	return fs.MergeMultiple([]FrameSet{other})
}

// MergeMultiple merges others into fs as a batch, deferring normalization
// until the end and running it once if any merge fell off the fast path.
func (fs FrameSet) MergeMultiple(others []FrameSet) (FrameSet, error) {
	result := fs
	needsNormalize := false
	for _, other := range others {
		if len(other.ranges) == 0 {
			continue
		}
		if len(result.ranges) == 0 {
			result = other
			needsNormalize = true
			continue
		}
		combined := CombinePadding(result.padding, other.padding)
		if !combined.IsValid() {
			return FrameSet{}, fmt.Errorf("%w: cannot merge frame sets with incompatible padding", ErrPaddingMismatch)
		}
		if canFastMerge(result, other) {
			ranges := make([]FrameRange, len(result.ranges))
			copy(ranges, result.ranges)
			last := len(ranges) - 1
			ranges[last].outTime += ranges[last].step
			for i := range ranges {
				ranges[i] = ranges[i].WithPadding(combined)
			}
			result.ranges = ranges
			result.padding = combined
			continue
		}
		ranges := make([]FrameRange, 0, len(result.ranges)+len(other.ranges))
		for _, r := range result.ranges {
			ranges = append(ranges, r.WithPadding(combined))
		}
		for _, r := range other.ranges {
			ranges = append(ranges, r.WithPadding(combined))
		}
		result.ranges = ranges
		result.padding = combined
		needsNormalize = true
	}
	if needsNormalize {
		result = result.Normalize()
	}
	return result, nil
}

func canFastMerge(self, other FrameSet) bool {
	if len(self.ranges) != 1 || len(other.ranges) != 1 {
		return false
	}
	back := self.ranges[0]
	single := other.ranges[0]
	if back.step <= 0 || back.invertStep {
		return false
	}
	return single.inTime == single.outTime && single.inTime == back.outTime+back.step
}

type normItem struct {
	isRange bool
	raw     int32
	rng     FrameRange
}

type normCandidate struct {
	start int
	count int
	step  int32
}

// Normalize rebuilds fs into canonical compact form: every frame is
// flattened into an ascending, duplicate-free sequence, and the longest,
// widest-step arithmetic progressions are repeatedly extracted and
// re-materialized until nothing raw remains. A 2-frame progression is
// always emitted as two singleton ranges rather than a step range.
func (fs FrameSet) Normalize() FrameSet {
	if fs.IsNormal() {
		return fs
	}
	values := fs.flatten()
	items := make([]normItem, len(values))
	for i, v := range values {
		items[i] = normItem{raw: v}
	}
	for hasRawItem(items) {
		c := bestCandidate(items)
		items = spliceCandidate(items, c, fs.padding)
	}
	result := FrameSet{padding: fs.padding}
	for _, it := range items {
		result.ranges = append(result.ranges, it.rng)
	}
	return result
}

func (fs FrameSet) flatten() []int32 {
	seen := make(map[int32]bool)
	var values []int32
	for _, r := range fs.ranges {
		n := r.Size()
		for i := int64(0); i < n; i++ {
			f, err := r.At(i)
			if err != nil {
				continue
			}
			if !seen[f] {
				seen[f] = true
				values = append(values, f)
			}
		}
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	return values
}

func hasRawItem(items []normItem) bool {
	for _, it := range items {
		if !it.isRange {
			return true
		}
	}
	return false
}

func bestCandidate(items []normItem) normCandidate {
	var best normCandidate
	for p := 0; p < len(items); p++ {
		if items[p].isRange {
			continue
		}
		root := items[p].raw
		count := 1
		var step int32 = 1
		if p+1 < len(items) && !items[p+1].isRange {
			step = items[p+1].raw - root
			count = 2
			k := int32(2)
			for p+int(k) < len(items) && !items[p+int(k)].isRange && items[p+int(k)].raw == root+k*step {
				count++
				k++
			}
		}
		if count > best.count || (count == best.count && step > best.step) {
			best = normCandidate{start: p, count: count, step: step}
		}
	}
	return best
}

func spliceCandidate(items []normItem, c normCandidate, padding Padding) []normItem {
	out := make([]normItem, 0, len(items)-c.count+2)
	out = append(out, items[:c.start]...)
	if c.count == 2 {
		r1, _ := NewFrameRange(items[c.start].raw, items[c.start].raw, 1)
		r2, _ := NewFrameRange(items[c.start+1].raw, items[c.start+1].raw, 1)
		out = append(out, normItem{isRange: true, rng: r1.WithPadding(padding)}, normItem{isRange: true, rng: r2.WithPadding(padding)})
	} else {
		in := items[c.start].raw
		out32 := in + int32(c.count-1)*c.step
		step := c.step
		if c.count == 1 {
			step = 1
		}
		r, _ := NewFrameRange(in, out32, step)
		out = append(out, normItem{isRange: true, rng: r.WithPadding(padding)})
	}
	out = append(out, items[c.start+c.count:]...)
	return out
}
