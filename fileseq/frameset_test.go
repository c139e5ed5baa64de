package fileseq

import (
	"errors"
	"testing"
)

func TestParseFrameSetString(t *testing.T) {
	cases := []struct {
		id   string
		in   string
		want string
	}{
		{id: "single range", in: "1-10", want: "1-10"},
		{id: "stepped", in: "1-10x2", want: "1-10x2"},
		{id: "multiple", in: "1,3,5-10", want: "1,3,5-10"},
		{id: "with interleave", in: "1-10:5,20", want: "1-10:5,20"},
	}
	for _, c := range cases {
		fs, err := ParseFrameSet(c.in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.id, err)
		}
		if got := fs.String(); got != c.want {
			t.Errorf("%s: got %q, want %q", c.id, got, c.want)
		}
	}
}

func TestParseFrameSetErrors(t *testing.T) {
	cases := []string{"", "1,,2", "1-10x2,abc"}
	for _, in := range cases {
		if _, err := ParseFrameSet(in); err == nil {
			t.Errorf("%q: got nil error, want error", in)
		}
	}
}

func TestFrameSetNormalize(t *testing.T) {
	cases := []struct {
		id   string
		in   string
		want string
	}{
		{id: "simple ascending", in: "1,2,3,4,5", want: "1-5"},
		{id: "worked example", in: "1,2,4,8,12,16,17,18", want: "1,2,4-16x4,17,18"},
		{id: "pair becomes singletons", in: "1,3", want: "1,3"},
		{id: "unordered input", in: "5,3,1,4,2", want: "1-5"},
		{id: "duplicates collapse", in: "1,1,2,3", want: "1-3"},
	}
	for _, c := range cases {
		fs, err := ParseFrameSet(c.in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.id, err)
		}
		norm := fs.Normalize()
		if got := norm.String(); got != c.want {
			t.Errorf("%s: got %q, want %q", c.id, got, c.want)
		}
	}
}

func TestFrameSetAppendPaddingMismatch(t *testing.T) {
	var fs FrameSet
	r1, _ := ParseFrameRange("001-010")
	r2, _ := ParseFrameRange("0001-0010")
	if err := fs.Append(r1); err != nil {
		t.Fatal(err)
	}
	if err := fs.Append(r2); !errors.Is(err, ErrPaddingMismatch) {
		t.Fatalf("got %v, want ErrPaddingMismatch", err)
	}
}

func TestFrameSetAt(t *testing.T) {
	fs, err := ParseFrameSet("1-3,10,20-22")
	if err != nil {
		t.Fatal(err)
	}
	want := []int32{1, 2, 3, 10, 20, 21, 22}
	for i, w := range want {
		got, err := fs.At(int64(i))
		if err != nil {
			t.Fatalf("At(%d): unexpected error: %v", i, err)
		}
		if got != w {
			t.Errorf("At(%d): got %d, want %d", i, got, w)
		}
	}
	last, err := fs.At(-1)
	if err != nil || last != 22 {
		t.Errorf("At(-1): got (%d, %v), want (22, nil)", last, err)
	}
}

func TestFrameSetContains(t *testing.T) {
	fs, err := ParseFrameSet("1-3,10,20-22")
	if err != nil {
		t.Fatal(err)
	}
	if ok, idx := fs.Contains(10); !ok || idx != 3 {
		t.Errorf("Contains(10): got (%v, %d), want (true, 3)", ok, idx)
	}
	if ok, _ := fs.Contains(99); ok {
		t.Error("Contains(99): got true, want false")
	}
}

func TestFrameSetNearest(t *testing.T) {
	fs, err := ParseFrameSet("1-10x3")
	if err != nil {
		t.Fatal(err)
	}
	left, right := fs.Nearest(2)
	if !left.Has || left.Frame != 1 {
		t.Errorf("left: got %+v, want frame 1", left)
	}
	if !right.Has || right.Frame != 4 {
		t.Errorf("right: got %+v, want frame 4", right)
	}
}

func TestFrameSetMergeFastPath(t *testing.T) {
	fs, err := ParseFrameSet("1-10")
	if err != nil {
		t.Fatal(err)
	}
	single, err := ParseFrameRange("11")
	if err != nil {
		t.Fatal(err)
	}
	var other FrameSet
	if err := other.Append(single); err != nil {
		t.Fatal(err)
	}
	merged, err := fs.Merge(other)
	if err != nil {
		t.Fatal(err)
	}
	if got := merged.String(); got != "1-11" {
		t.Errorf("got %q, want %q", got, "1-11")
	}
}

func TestFrameSetMergeNormalizes(t *testing.T) {
	fs, err := ParseFrameSet("1,2,3")
	if err != nil {
		t.Fatal(err)
	}
	other, err := ParseFrameSet("100")
	if err != nil {
		t.Fatal(err)
	}
	merged, err := fs.Merge(other)
	if err != nil {
		t.Fatal(err)
	}
	if got := merged.String(); got != "1-3,100" {
		t.Errorf("got %q, want %q", got, "1-3,100")
	}
}

func TestFrameSetMergeEmptySelf(t *testing.T) {
	var empty FrameSet
	other, err := ParseFrameSet("1-10")
	if err != nil {
		t.Fatal(err)
	}
	merged, err := empty.Merge(other)
	if err != nil {
		t.Fatal(err)
	}
	if got := merged.String(); got != "1-10" {
		t.Errorf("got %q, want %q (empty receiver is the merge identity)", got, "1-10")
	}
}
