package fileseq

import "testing"

func TestParsePadding(t *testing.T) {
	cases := []struct {
		id       string
		in       string
		wantErr  bool
		explicit bool
		digits   uint32
	}{
		{id: "plain", in: "10", explicit: false, digits: 2},
		{id: "leading zero", in: "010", explicit: true, digits: 3},
		{id: "negative plain", in: "-10", explicit: false, digits: 3},
		{id: "negative leading zero", in: "-010", explicit: true, digits: 4},
		{id: "zero sentinel", in: "0", explicit: false, digits: 1},
		{id: "negative zero sentinel", in: "-0", explicit: false, digits: 2},
		{id: "empty", in: "", wantErr: true},
		{id: "bare dash", in: "-", wantErr: true},
		{id: "non numeric", in: "12a", wantErr: true},
	}
	for _, c := range cases {
		got, err := ParsePadding(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("%s: got nil error, want error", c.id)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.id, err)
		}
		if got.explicit != c.explicit || got.digits != c.digits {
			t.Errorf("%s: got %+v, want explicit=%v digits=%d", c.id, got, c.explicit, c.digits)
		}
	}
}

func TestCheckPadding(t *testing.T) {
	if !CheckPadding("007") {
		t.Error("got false, want true")
	}
	if CheckPadding("") {
		t.Error("got true, want false")
	}
}

func TestCombinePadding(t *testing.T) {
	explicit3, _ := ParsePadding("007")
	explicit4, _ := ParsePadding("0007")
	implicit2, _ := ParsePadding("10")
	implicit4, _ := ParsePadding("1000")

	cases := []struct {
		id   string
		a, b Padding
		want Padding
	}{
		{id: "invalid absorbs", a: invalidPadding, b: explicit3, want: invalidPadding},
		{id: "equal explicit agree", a: explicit3, b: explicit3, want: explicit3},
		{id: "unequal explicit invalid", a: explicit3, b: explicit4, want: invalidPadding},
		{id: "explicit wins over implicit", a: explicit3, b: implicit2, want: explicit3},
		{id: "explicit wins when it is the second operand", a: implicit2, b: explicit3, want: explicit3},
		{id: "both implicit takes narrower", a: implicit2, b: implicit4, want: implicit2},
		{id: "idempotent", a: explicit3, b: explicit3, want: explicit3},
	}
	for _, c := range cases {
		got := CombinePadding(c.a, c.b)
		if !got.Equal(c.want) {
			t.Errorf("%s: got %v, want %v", c.id, got, c.want)
		}
	}
}

func TestPaddingAsExplicitWidth(t *testing.T) {
	explicit, _ := ParsePadding("0007")
	if w := explicit.AsExplicitWidth(); w != 4 {
		t.Errorf("got %d, want 4", w)
	}
	implicit, _ := ParsePadding("7")
	if w := implicit.AsExplicitWidth(); w != 1 {
		t.Errorf("got %d, want 1", w)
	}
}

func TestPaddingFormatFrame(t *testing.T) {
	cases := []struct {
		id     string
		pad    string
		frame  int32
		wantFS string
	}{
		{id: "basic pad", pad: "0001", frame: 7, wantFS: "0007"},
		{id: "negative frame pad", pad: "0001", frame: -7, wantFS: "-007"},
		{id: "no padding", pad: "7", frame: 12, wantFS: "12"},
		{id: "wider than width", pad: "001", frame: 12345, wantFS: "12345"},
	}
	for _, c := range cases {
		p, err := ParsePadding(c.pad)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.id, err)
		}
		if got := p.FormatFrame(c.frame); got != c.wantFS {
			t.Errorf("%s: got %q, want %q", c.id, got, c.wantFS)
		}
	}
}
