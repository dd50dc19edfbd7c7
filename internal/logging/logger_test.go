package logging

import (
	"bytes"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

// swapLogger points L at a buffer for the duration of the test.
func swapLogger(t *testing.T, level clog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(level)
	t.Cleanup(func() { L = prev })
	return &buf
}

func TestHelpers_WriteToBuffer(t *testing.T) {
	buf := swapLogger(t, clog.DebugLevel)

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q; got: %s", want, out)
		}
	}
}

func TestSetLevel_FiltersBelowThreshold(t *testing.T) {
	buf := swapLogger(t, clog.DebugLevel)

	if err := SetLevel("error"); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	Infof("quiet")
	Errorf("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info message should be filtered at error level; got: %s", out)
	}
	if !strings.Contains(out, "loud") {
		t.Fatalf("missing error message; got: %s", out)
	}
}

func TestSetLevel_RejectsUnknown(t *testing.T) {
	swapLogger(t, clog.InfoLevel)
	if err := SetLevel("chatty"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestSetOutput_KeepsLevel(t *testing.T) {
	swapLogger(t, clog.ErrorLevel)

	var buf bytes.Buffer
	SetOutput(&buf)
	Warnf("dropped")
	Errorf("kept")

	if strings.Contains(buf.String(), "dropped") || !strings.Contains(buf.String(), "kept") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}
