package cliutil

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevel(t *testing.T) {
	quiet := NewLogger("seqls", false)
	if quiet.GetLevel() != log.WarnLevel {
		t.Errorf("got %v, want %v", quiet.GetLevel(), log.WarnLevel)
	}

	verbose := NewLogger("seqls", true)
	if verbose.GetLevel() != log.DebugLevel {
		t.Errorf("got %v, want %v", verbose.GetLevel(), log.DebugLevel)
	}
}
