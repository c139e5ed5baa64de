package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/holovista/fileseq/internal/cliutil"
)

func TestRunExpandsValidSpec(t *testing.T) {
	var out bytes.Buffer
	logger := cliutil.NewLogger("seqexpand", false)
	failed := run([]string{"foo.1-3#.jpg"}, &out, logger)
	if failed {
		t.Error("got failed=true, want false")
	}
	want := "foo.0001.jpg\nfoo.0002.jpg\nfoo.0003.jpg\n"
	if got := out.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRunEchoesUnparseableSpecLiterally(t *testing.T) {
	var out bytes.Buffer
	logger := cliutil.NewLogger("seqexpand", false)
	failed := run([]string{"not-a-spec!!"}, &out, logger)
	if !failed {
		t.Error("got failed=false, want true")
	}
	if got := out.String(); got != "not-a-spec!!\n" {
		t.Errorf("got %q, want %q", got, "not-a-spec!!\n")
	}
}

func TestRunMixedSpecsReportsFailureButExpandsValidOnes(t *testing.T) {
	var out bytes.Buffer
	logger := cliutil.NewLogger("seqexpand", false)
	failed := run([]string{"foo.1-2#.jpg", "bad!!"}, &out, logger)
	if !failed {
		t.Error("got failed=false, want true")
	}
	got := out.String()
	if !strings.Contains(got, "foo.0001.jpg") || !strings.Contains(got, "bad!!") {
		t.Errorf("got %q, want it to contain both the expansion and the literal echo", got)
	}
}
