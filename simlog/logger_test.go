package simlog_test

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joeycumines/logiface"

	"github.com/katalvlaran/wiresim/circuit"
	"github.com/katalvlaran/wiresim/simlog"
)

// TestLogger_ImplementsCircuitLogger is a compile-time-adjacent smoke test:
// simlog.Logger must satisfy circuit.Logger so Circuit.SetLogger accepts it
// directly.
func TestLogger_ImplementsCircuitLogger(t *testing.T) {
	var buf bytes.Buffer
	l := simlog.New(&buf, logiface.LevelDebug)

	c := circuit.NewCircuit("logger-test")
	c.SetLogger(l)
	require.Equal(t, l, c.Logger())
}

// TestLogger_WritesJSONAtConfiguredLevel verifies events at or above the
// configured level are written, and events below it are suppressed.
func TestLogger_WritesJSONAtConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	l := simlog.New(&buf, logiface.LevelWarning)

	l.Debugf("should not appear %d", 1)
	l.Warnf("warned about %s", "something")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &decoded))
	require.Equal(t, "warned about something", decoded["msg"])
}

// TestLogger_SubTagsSubsystemHierarchically verifies Sub produces a child
// Logger whose events carry a dotted subsystem path.
func TestLogger_SubTagsSubsystemHierarchically(t *testing.T) {
	var buf bytes.Buffer
	l := simlog.New(&buf, logiface.LevelDebug)

	child := l.Sub("scheduler").Sub("splitter")
	child.Errorf("contention detected")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &decoded))
	require.Equal(t, "scheduler.splitter", decoded["subsystem"])
	require.Equal(t, "contention detected", decoded["msg"])
}

// TestLogger_FatalfDoesNotExitProcess documents and verifies that Fatalf
// logs at alert severity (LevelAlert) without terminating the test process — unlike
// logiface's own Logger.Fatal/Panic convenience methods.
func TestLogger_FatalfDoesNotExitProcess(t *testing.T) {
	var buf bytes.Buffer
	l := simlog.New(&buf, logiface.LevelDebug)

	l.Fatalf("fatal-ish condition: %v", "oops")

	require.Contains(t, buf.String(), "fatal-ish condition: oops")
}

// TestLogger_SubsystemFilterDropsNonMatching verifies WithSubsystemFilter
// suppresses events from sub-loggers whose dotted name doesn't match, while
// letting matching ones and the unfiltered root through.
func TestLogger_SubsystemFilterDropsNonMatching(t *testing.T) {
	var buf bytes.Buffer
	l := simlog.New(&buf, logiface.LevelDebug, simlog.WithSubsystemFilter(regexp.MustCompile(`^scheduler`)))

	l.Sub("memory").Warnf("should be dropped")
	l.Sub("scheduler").Warnf("should be kept")

	require.NotContains(t, buf.String(), "should be dropped")
	require.Contains(t, buf.String(), "should be kept")
}

// TestDiscard_DropsEverything verifies the Discard Logger never writes
// anything.
func TestDiscard_DropsEverything(t *testing.T) {
	l := simlog.Discard()
	l.Errorf("nobody should see this")
	l.Warnf("or this")
	// No assertion beyond "doesn't panic" — Discard writes to io.Discard, so
	// there is nothing observable to check.
}
