package walk

import (
	"context"
	"testing"
	"testing/fstest"
)

func buildFS() fstest.MapFS {
	return fstest.MapFS{
		"shots/a/foo.0001.jpg": &fstest.MapFile{},
		"shots/a/foo.0002.jpg": &fstest.MapFile{},
		"shots/a/foo.0003.jpg": &fstest.MapFile{},
		"shots/a/notes.txt":    &fstest.MapFile{},
		"shots/a/.hidden.jpg":  &fstest.MapFile{},
		"shots/b/bar.01.jpg":   &fstest.MapFile{},
		"shots/b/bar.02.jpg":   &fstest.MapFile{},
	}
}

func TestFindSequenceOnDisk(t *testing.T) {
	results, err := FindSequenceOnDisk(context.Background(), buildFS(), "shots", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	byDir := map[string]Result{}
	for _, r := range results {
		byDir[r.Dir] = r
	}

	a := byDir["shots/a"]
	if len(a.Sequences) != 1 || a.Sequences[0].String() != "foo.1-3#.jpg" {
		t.Errorf("shots/a: got sequences %v", a.Sequences)
	}
	if len(a.NonSequences) != 1 || a.NonSequences[0] != "shots/a/notes.txt" {
		t.Errorf("shots/a: got non-sequences %v", a.NonSequences)
	}

	b := byDir["shots/b"]
	if len(b.Sequences) != 1 || b.Sequences[0].String() != "bar.1-2@@.jpg" {
		t.Errorf("shots/b: got sequences %v", b.Sequences)
	}
}

func TestFindSequenceOnDiskIncludeHidden(t *testing.T) {
	results, err := FindSequenceOnDisk(context.Background(), buildFS(), "shots", Options{IncludeHidden: true})
	if err != nil {
		t.Fatal(err)
	}
	var a Result
	for _, r := range results {
		if r.Dir == "shots/a" {
			a = r
		}
	}
	found := false
	for _, ns := range a.NonSequences {
		if ns == "shots/a/.hidden.jpg" {
			found = true
		}
	}
	if !found {
		t.Errorf("got %v, want .hidden.jpg included as a non-sequence", a.NonSequences)
	}
}

func TestFindSequenceOnDiskIgnoreGlob(t *testing.T) {
	results, err := FindSequenceOnDisk(context.Background(), buildFS(), "shots", Options{IgnoreGlob: "**/bar.*"})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range results {
		if r.Dir == "shots/b" {
			t.Fatalf("got shots/b result %v, want it fully ignored", r)
		}
	}
}
