package project_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wiresim/circuit"
	"github.com/katalvlaran/wiresim/project"
	"github.com/katalvlaran/wiresim/simlog"
)

// TestProject_AddAndLookup verifies a Project indexes circuits by both id
// and name, and GetCircuits preserves registration order.
func TestProject_AddAndLookup(t *testing.T) {
	p := project.New()

	c1 := circuit.NewCircuit("half-adder")
	c2 := circuit.NewCircuit("full-adder")

	require.NoError(t, p.AddCircuit("ha1", c1))
	require.NoError(t, p.AddCircuit("fa1", c2))

	got, err := p.GetCircuitById("ha1")
	require.NoError(t, err)
	require.Same(t, c1, got)

	got, err = p.GetCircuitByName("full-adder")
	require.NoError(t, err)
	require.Same(t, c2, got)

	require.Equal(t, []*circuit.Circuit{c1, c2}, p.GetCircuits())
}

// TestProject_DuplicateAndEmptyID verifies the id-validation errors.
func TestProject_DuplicateAndEmptyID(t *testing.T) {
	p := project.New()
	c := circuit.NewCircuit("x")

	require.ErrorIs(t, p.AddCircuit("", c), project.ErrEmptyID)
	require.NoError(t, p.AddCircuit("x1", c))
	require.ErrorIs(t, p.AddCircuit("x1", c), project.ErrDuplicateID)
}

// TestProject_UnknownCircuit verifies lookups against unregistered ids/names
// fail with ErrUnknownCircuit.
func TestProject_UnknownCircuit(t *testing.T) {
	p := project.New()
	_, err := p.GetCircuitById("missing")
	require.ErrorIs(t, err, project.ErrUnknownCircuit)
	_, err = p.GetCircuitByName("missing")
	require.ErrorIs(t, err, project.ErrUnknownCircuit)
}

// TestProject_LoggerPropagatesToCircuits verifies SetLogger reaches both
// already-registered and subsequently-registered circuits, each under a
// sub-logger named after its registration id.
func TestProject_LoggerPropagatesToCircuits(t *testing.T) {
	p := project.New()
	c1 := circuit.NewCircuit("early")
	require.NoError(t, p.AddCircuit("early-id", c1))

	p.SetLogger(simlog.Discard())

	c2 := circuit.NewCircuit("late")
	require.NoError(t, p.AddCircuit("late-id", c2))

	_, ok := c1.Logger().(*simlog.Logger)
	require.True(t, ok, "already-registered circuit should have received the propagated logger")
	_, ok = c2.Logger().(*simlog.Logger)
	require.True(t, ok, "subsequently-registered circuit should inherit the project logger")
}
