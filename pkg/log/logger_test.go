package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestSetLevelFiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	logger := New("test")

	SetLevel(Notice)
	logger.Info("hidden info")
	logger.Noticef("visible %s", "notice")

	SetLevel(Debug)
	logger.Debug("visible debug")

	out := buf.String()
	if strings.Contains(out, "hidden info") {
		t.Errorf("Info message should be filtered at Notice level:\n%s", out)
	}
	if !strings.Contains(out, "visible notice") {
		t.Errorf("Expected notice message in output:\n%s", out)
	}
	if !strings.Contains(out, "visible debug") {
		t.Errorf("Expected debug message after raising verbosity:\n%s", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Errorf("Expected module name in output:\n%s", out)
	}
}
