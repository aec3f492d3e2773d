// Package project implements spec.md §3/§6's Project: a collection of
// Circuits indexed by both a stable id and a human-readable name, the
// top-level handle a loader hands back to a client. Grounded on circuit.
// Circuit's own label-indexed bookkeeping (inputOrder/inputs,
// outputOrder/outputs), generalized one level up.
package project

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wiresim/circuit"
)

// ErrEmptyID is returned by AddCircuit when id is empty.
var ErrEmptyID = errors.New("project: circuit id must not be empty")

// ErrDuplicateID is returned by AddCircuit when id has already been used.
var ErrDuplicateID = errors.New("project: duplicate circuit id")

// ErrUnknownCircuit is returned by GetCircuitById/GetCircuitByName when no
// matching Circuit is registered.
var ErrUnknownCircuit = errors.New("project: unknown circuit")

// Project owns a set of Circuits, indexed by id (string) and by name (via
// Circuit.Name(), not necessarily unique — GetCircuitByName returns the
// first match in registration order).
type Project struct {
	order    []string
	byID     map[string]*circuit.Circuit
	byName   map[string]*circuit.Circuit
	logger   circuit.Logger
}

// New constructs an empty Project.
func New() *Project {
	return &Project{
		byID:   make(map[string]*circuit.Circuit),
		byName: make(map[string]*circuit.Circuit),
		logger: nil,
	}
}

// AddCircuit registers c under id, in addition to its own Name(). If a
// Circuit was already registered under that name, it is left as the
// GetCircuitByName match (first registration wins) — ids are always
// authoritative and unique.
//
// Errors: ErrEmptyID, ErrDuplicateID.
func (p *Project) AddCircuit(id string, c *circuit.Circuit) error {
	if id == "" {
		return ErrEmptyID
	}
	if _, exists := p.byID[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	if p.logger != nil {
		c.SetLogger(p.logger.Sub(id))
	}
	p.byID[id] = c
	p.order = append(p.order, id)
	if name := c.Name(); name != "" {
		if _, exists := p.byName[name]; !exists {
			p.byName[name] = c
		}
	}
	return nil
}

// GetCircuitById returns the Circuit registered under id.
//
// Errors: ErrUnknownCircuit.
func (p *Project) GetCircuitById(id string) (*circuit.Circuit, error) {
	c, ok := p.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %q", ErrUnknownCircuit, id)
	}
	return c, nil
}

// GetCircuitByName returns the first Circuit registered whose Name() equals
// name.
//
// Errors: ErrUnknownCircuit.
func (p *Project) GetCircuitByName(name string) (*circuit.Circuit, error) {
	c, ok := p.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: name %q", ErrUnknownCircuit, name)
	}
	return c, nil
}

// GetCircuits returns every registered Circuit, in registration order.
func (p *Project) GetCircuits() []*circuit.Circuit {
	out := make([]*circuit.Circuit, len(p.order))
	for i, id := range p.order {
		out[i] = p.byID[id]
	}
	return out
}

// SetLogger attaches l to the Project and, retroactively, to every Circuit
// already registered (each under a sub-logger named after its id) — and to
// every Circuit registered afterward, per spec.md §6's "loggers propagate
// to child loggables".
func (p *Project) SetLogger(l circuit.Logger) {
	p.logger = l
	if l == nil {
		return
	}
	for _, id := range p.order {
		p.byID[id].SetLogger(l.Sub(id))
	}
}

// Logger returns the Project's attached logger, or nil if none was set.
func (p *Project) Logger() circuit.Logger { return p.logger }
