package fileseq

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FrameRange describes a single arithmetic progression of integer frames,
// optionally stepped, inverted, or interleaved.
type FrameRange struct {
	inTime     int32
	outTime    int32
	step       int32
	invertStep bool
	interleave int32
	padding    Padding
}

var frameRangePattern = regexp.MustCompile(`^(-?\d+)(?:-(-?\d+)(?:x(-?\d+)|:(\d+)|y(-?\d+))?)?$`)

// Neighbor is an optional frame value, returned by Nearest.
type Neighbor struct {
	Has   bool
	Frame int32
}

// NewFrameRange builds a plain, possibly stepped, forward or reverse range.
// step == 0 is only valid when in == out, and yields an empty range.
func NewFrameRange(in, out, step int32) (FrameRange, error) {
	r := FrameRange{inTime: in, outTime: out, step: step}
	if err := r.validate(); err != nil {
		return FrameRange{}, err
	}
	return r, nil
}

// NewInvertedFrameRange builds a range over the frames skipped by a plain
// step between in and out.
func NewInvertedFrameRange(in, out, step int32) (FrameRange, error) {
	r := FrameRange{inTime: in, outTime: out, step: step, invertStep: true}
	if err := r.validate(); err != nil {
		return FrameRange{}, err
	}
	return r, nil
}

// NewInterleaveFrameRange builds a range over in..out reordered by the
// interleave sweep, with interleave >= 2.
func NewInterleaveFrameRange(in, out, interleave int32) (FrameRange, error) {
	r := FrameRange{inTime: in, outTime: out, step: 1, interleave: interleave}
	if err := r.validate(); err != nil {
		return FrameRange{}, err
	}
	return r, nil
}

// WithPadding returns a copy of r carrying the given padding.
func (r FrameRange) WithPadding(p Padding) FrameRange {
	r.padding = p
	return r
}

// Padding returns r's padding.
func (r FrameRange) Padding() Padding {
	return r.padding
}

func (r FrameRange) validate() error {
	switch {
	case r.interleave < 0:
		return fmt.Errorf("%w: negative interleave %d", ErrInvalidRange, r.interleave)
	case r.interleave > 0 && r.step != 1:
		return fmt.Errorf("%w: interleave requires step 1, got %d", ErrInvalidRange, r.step)
	case r.step > 0:
		if r.inTime > r.outTime {
			return fmt.Errorf("%w: positive step requires in <= out (%d > %d)", ErrInvalidRange, r.inTime, r.outTime)
		}
	case r.step < 0:
		if r.inTime < r.outTime {
			return fmt.Errorf("%w: negative step requires in >= out (%d < %d)", ErrInvalidRange, r.inTime, r.outTime)
		}
	default: // step == 0
		if r.inTime != r.outTime || r.invertStep {
			return fmt.Errorf("%w: zero step requires in == out and no inversion", ErrInvalidRange)
		}
	}
	return nil
}

// ParseFrameRange parses a single range token (no comma) per the package
// grammar, deriving padding jointly from the in and out number strings.
func ParseFrameRange(s string) (FrameRange, error) {
	m := frameRangePattern.FindStringSubmatch(s)
	if m == nil {
		return FrameRange{}, fmt.Errorf("%w: %q is not a frame range", ErrParse, s)
	}
	inStr, outStr, stepStr, interleaveStr, invstepStr := m[1], m[2], m[3], m[4], m[5]

	in, err := parseInt32(inStr)
	if err != nil {
		return FrameRange{}, err
	}
	inPad, err := ParsePadding(inStr)
	if err != nil {
		return FrameRange{}, err
	}

	out := in
	pad := inPad
	if outStr != "" {
		out, err = parseInt32(outStr)
		if err != nil {
			return FrameRange{}, err
		}
		outPad, err := ParsePadding(outStr)
		if err != nil {
			return FrameRange{}, err
		}
		pad = CombinePadding(inPad, outPad)
		if !pad.IsValid() {
			return FrameRange{}, fmt.Errorf("%w: %q and %q disagree on padding", ErrPaddingMismatch, inStr, outStr)
		}
	}

	step := int32(1)
	invert := false
	var interleave int32

	switch {
	case stepStr != "":
		step, err = parseInt32(stepStr)
		if err != nil {
			return FrameRange{}, err
		}
	case interleaveStr != "":
		n, err := strconv.ParseInt(interleaveStr, 10, 32)
		if err != nil {
			return FrameRange{}, fmt.Errorf("%w: %q does not fit in 32 bits", ErrInvalidRange, interleaveStr)
		}
		if n != 1 {
			interleave = int32(n)
		}
	case invstepStr != "":
		n, err := parseInt32(invstepStr)
		if err != nil {
			return FrameRange{}, err
		}
		if n == 0 {
			step = 1
		} else {
			step = n
			invert = true
		}
	}

	r := FrameRange{inTime: in, outTime: out, step: step, invertStep: invert, interleave: interleave, padding: pad}
	if err := r.validate(); err != nil {
		return FrameRange{}, err
	}
	return r, nil
}

// IsFrameRange reports whether s parses as a single frame range.
func IsFrameRange(s string) bool {
	_, err := ParseFrameRange(s)
	return err == nil
}

// Size returns the number of frames r covers.
func (r FrameRange) Size() int64 {
	if r.step == 0 {
		return 0
	}
	s := absInt32(r.step)
	var diff int64
	if r.step > 0 {
		diff = int64(r.outTime) - int64(r.inTime)
	} else {
		diff = int64(r.inTime) - int64(r.outTime)
	}
	plain := diff/int64(s) + 1
	if !r.invertStep {
		return plain
	}
	if s == 1 {
		return 0
	}
	return (diff + 1) - plain
}

// At returns the i-th frame of r in enumeration order, 0-based.
func (r FrameRange) At(i int64) (int32, error) {
	f, ok := r.at(i)
	if !ok {
		return 0, fmt.Errorf("%w: index %d", ErrOutOfRange, i)
	}
	return f, nil
}

func (r FrameRange) at(i int64) (int32, bool) {
	if i < 0 || r.step == 0 {
		return 0, false
	}
	if r.interleave >= 2 {
		order := interleaveOrder(r.inTime, r.outTime, r.interleave)
		if i >= int64(len(order)) {
			return 0, false
		}
		return order[i], true
	}
	s := absInt32(r.step)
	if r.invertStep {
		if s == 1 {
			return 0, false
		}
		if r.step > 0 {
			frame := r.inTime + 1 + int32(i) + int32(i/int64(s-1))
			if frame > r.outTime {
				return 0, false
			}
			return frame, true
		}
		frame := r.inTime - 1 - int32(i) - int32(i/int64(s-1))
		if frame < r.outTime {
			return 0, false
		}
		return frame, true
	}
	if r.step > 0 {
		frame := r.inTime + int32(i)*r.step
		if frame > r.outTime {
			return 0, false
		}
		return frame, true
	}
	frame := r.inTime + int32(i)*r.step
	if frame < r.outTime {
		return 0, false
	}
	return frame, true
}

// Contains reports whether frame is a member of r, along with its
// enumeration-order index when it is.
func (r FrameRange) Contains(frame int32) (bool, int64) {
	if r.step == 0 {
		return false, 0
	}
	if r.interleave >= 2 {
		order := interleaveOrder(r.inTime, r.outTime, r.interleave)
		for idx, f := range order {
			if f == frame {
				return true, int64(idx)
			}
		}
		return false, 0
	}
	s := absInt32(r.step)
	if r.invertStep {
		if s == 1 {
			return false, 0
		}
		if r.step > 0 {
			if frame <= r.inTime || frame > r.outTime {
				return false, 0
			}
			if floorMod(int64(frame-r.inTime), int64(s)) == 0 {
				return false, 0
			}
			d := int64(frame - r.inTime - 1)
			return true, d - d/int64(s)
		}
		if frame >= r.inTime || frame < r.outTime {
			return false, 0
		}
		if floorMod(int64(r.inTime-frame), int64(s)) == 0 {
			return false, 0
		}
		d := int64(r.inTime - frame - 1)
		return true, d - d/int64(s)
	}
	if r.step > 0 {
		if frame < r.inTime || frame > r.outTime {
			return false, 0
		}
		d := int64(frame - r.inTime)
		if d%int64(s) != 0 {
			return false, 0
		}
		return true, d / int64(s)
	}
	if frame > r.inTime || frame < r.outTime {
		return false, 0
	}
	d := int64(r.inTime - frame)
	if d%int64(s) != 0 {
		return false, 0
	}
	return true, d / int64(s)
}

// Nearest returns the members of r nearest to, but not equal to, frame.
func (r FrameRange) Nearest(frame int32) (left, right Neighbor) {
	if r.step == 0 {
		return Neighbor{}, Neighbor{}
	}
	lo, hi := r.inTime, r.outTime
	if lo > hi {
		lo, hi = hi, lo
	}
	if frame < lo {
		if f, ok := r.at(0); ok {
			return Neighbor{}, Neighbor{true, f}
		}
		return Neighbor{}, Neighbor{}
	}
	if frame > hi {
		if f, ok := r.at(r.Size() - 1); ok {
			return Neighbor{true, f}, Neighbor{}
		}
		return Neighbor{}, Neighbor{}
	}
	if r.interleave >= 2 {
		if frame-1 >= lo {
			left = Neighbor{true, frame - 1}
		}
		if frame+1 <= hi {
			right = Neighbor{true, frame + 1}
		}
		return left, right
	}
	if r.invertStep {
		return r.nearestInverted(frame)
	}
	return r.nearestPlain(frame)
}

func (r FrameRange) nearestPlain(frame int32) (left, right Neighbor) {
	s := int64(absInt32(r.step))
	delta := floorMod(int64(frame)-int64(r.inTime), s)
	low := int64(frame) - delta
	if low == int64(frame) {
		low -= s
	}
	high := low + s
	lo, hi := int64(r.inTime), int64(r.outTime)
	if lo > hi {
		lo, hi = hi, lo
	}
	if low >= lo && low <= hi {
		left = Neighbor{true, int32(low)}
	}
	if high >= lo && high <= hi {
		right = Neighbor{true, int32(high)}
	}
	return left, right
}

func (r FrameRange) nearestInverted(frame int32) (left, right Neighbor) {
	if ok, _ := r.Contains(frame - 1); ok {
		left = Neighbor{true, frame - 1}
	} else if ok, _ := r.Contains(frame - 2); ok {
		left = Neighbor{true, frame - 2}
	}
	if ok, _ := r.Contains(frame + 1); ok {
		right = Neighbor{true, frame + 1}
	} else if ok, _ := r.Contains(frame + 2); ok {
		right = Neighbor{true, frame + 2}
	}
	return left, right
}

// interleaveOrder enumerates in..out in the interleave sweep order for
// stride k: emit every k-th frame from in, then halve the stride and emit
// the same progression skipping already-used frames, until the stride
// reaches 1, at which point all remaining frames are emitted in order.
func interleaveOrder(in, out, k int32) []int32 {
	n := int(out-in) + 1
	used := make([]bool, n)
	order := make([]int32, 0, n)
	stride := k
	for {
		if stride <= 1 {
			for f := in; f <= out; f++ {
				if !used[f-in] {
					used[f-in] = true
					order = append(order, f)
				}
			}
			break
		}
		for f := in; f <= out; f += stride {
			if !used[f-in] {
				used[f-in] = true
				order = append(order, f)
			}
		}
		stride /= 2
	}
	return order
}

// Uninvert materializes r's enumeration order as a FrameSet of single-frame
// ranges, each carrying r's padding.
func (r FrameRange) Uninvert() (FrameSet, error) {
	var fs FrameSet
	n := r.Size()
	for i := int64(0); i < n; i++ {
		f, ok := r.at(i)
		if !ok {
			return FrameSet{}, fmt.Errorf("%w: inconsistent range during uninvert", ErrInvalidRange)
		}
		single, err := NewFrameRange(f, f, 1)
		if err != nil {
			return FrameSet{}, err
		}
		single = single.WithPadding(r.padding)
		if err := fs.Append(single); err != nil {
			return FrameSet{}, err
		}
	}
	return fs, nil
}

func (r FrameRange) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(int64(r.inTime), 10))
	if r.inTime != r.outTime {
		b.WriteByte('-')
		b.WriteString(strconv.FormatInt(int64(r.outTime), 10))
	}
	if r.step == 0 {
		return b.String()
	}
	if r.interleave >= 2 {
		b.WriteByte(':')
		b.WriteString(strconv.FormatInt(int64(r.interleave), 10))
		return b.String()
	}
	if r.invertStep {
		b.WriteByte('y')
		b.WriteString(strconv.FormatInt(int64(r.step), 10))
		return b.String()
	}
	if r.step != 1 {
		b.WriteByte('x')
		b.WriteString(strconv.FormatInt(int64(r.step), 10))
	}
	return b.String()
}
