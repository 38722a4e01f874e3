// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netlist realizes minimized expressions as two-level gate circuits and
// simulates them.
//
// A circuit has one input per variable, a NOT gate for each variable used in
// negated form, an AND gate per product term, and an OR gate for the output.
// Wire states are kept in two frames: components read the current frame and
// write the next one, and each simulation step swaps the frames. A signal thus
// takes one step to cross a gate.
//
package netlist

import (
	"strconv"
	"strings"

	"github.com/db47h/kmap"
)

// A Component is a gate in a circuit. It reads its inputs from the current
// frame and sets its output in the next one.
//
type Component func(c *Circuit)

// Constant pins.
//
const (
	cstFalse = iota
	cstTrue
	cstCount
)

// settleSteps is the number of steps needed for a change of the inputs to
// reach the output: input, NOT, AND, OR.
//
const settleSteps = 4

var varNames = [...]string{"A", "B", "C", "D"}

type gate struct {
	name string
	in   []int
	out  int
}

// Circuit is a runnable gate level circuit.
//
type Circuit struct {
	s0    []bool // wire states frame #0
	s1    []bool // wire states frame #1
	cs    []Component
	count int // wire count
	names []string
	gates []gate
	out   int
	input int // minterm applied to the inputs
	steps uint
}

// allocPin allocates a pin and returns its number.
//
func (c *Circuit) allocPin(name string) int {
	n := c.count
	c.count++
	c.names = append(c.names, name)
	return n
}

func (c *Circuit) addGate(name string, in []int, out int, f Component) {
	c.gates = append(c.gates, gate{name, in, out})
	c.cs = append(c.cs, f)
}

// Build returns a circuit computing the expression r. The constant 1 is a
// single AND gate with no inputs. The constant 0 has no gates: the output is
// tied to the false pin.
//
func Build(r kmap.Result) *Circuit {
	c := &Circuit{count: cstCount, names: []string{"false", "true"}}

	var in, not [len(varNames)]int
	for v := range in {
		pin := c.allocPin(varNames[v])
		shift := uint(len(varNames) - 1 - v)
		in[v] = pin
		c.addGate("IN", nil, pin, func(c *Circuit) {
			c.Set(pin, c.input>>shift&1 == 1)
		})
	}
	for v := range not {
		not[v] = -1
	}

	var terms []int
	for i, t := range r.Terms {
		ins := make([]int, 0, len(t.Term))
		for _, l := range t.Term {
			if !l.Neg {
				ins = append(ins, in[l.Var])
				continue
			}
			if not[l.Var] < 0 {
				src, dst := in[l.Var], c.allocPin(varNames[l.Var]+"'")
				not[l.Var] = dst
				c.addGate("NOT", []int{src}, dst, func(c *Circuit) {
					c.Set(dst, !c.Get(src))
				})
			}
			ins = append(ins, not[l.Var])
		}
		out := c.allocPin("t" + strconv.Itoa(i))
		c.addGate("AND", ins, out, func(c *Circuit) {
			v := true
			for _, n := range ins {
				v = v && c.Get(n)
			}
			c.Set(out, v)
		})
		terms = append(terms, out)
	}

	if len(terms) == 0 {
		c.out = cstFalse
	} else {
		out := c.allocPin("out")
		c.out = out
		c.addGate("OR", terms, out, func(c *Circuit) {
			v := false
			for _, n := range terms {
				v = v || c.Get(n)
			}
			c.Set(out, v)
		})
	}

	c.s0 = make([]bool, c.count)
	c.s1 = make([]bool, c.count)
	c.s0[cstTrue] = true
	c.s1[cstTrue] = true
	return c
}

// Get returns the state of pin n.
//
func (c *Circuit) Get(n int) bool {
	return c.s0[n]
}

// Set sets the state s of pin n.
//
func (c *Circuit) Set(n int, s bool) {
	c.s1[n] = s
}

// Step advances the simulation by one step.
//
func (c *Circuit) Step() {
	for _, f := range c.cs {
		f(c)
	}
	if c.s1[cstFalse] || !c.s1[cstTrue] {
		panic("true or false constants have been overwritten")
	}
	c.steps++
	c.s0, c.s1 = c.s1, c.s0
}

// Steps returns the value of the step counter.
//
func (c *Circuit) Steps() uint {
	return c.steps
}

// Eval applies minterm m to the circuit inputs, runs the simulation until the
// output is stable and returns it.
//
func (c *Circuit) Eval(m int) bool {
	c.input = m
	for i := 0; i < settleSteps; i++ {
		c.Step()
	}
	return c.Get(c.out)
}

// Size returns the gate count in the circuit, inputs excluded.
//
func (c *Circuit) Size() int { return len(c.gates) - len(varNames) }

// String returns a description of the circuit's gates, one per line, inputs
// excluded. For example:
//
//	NOT(A) -> A'
//	AND(A', B) -> t0
//	OR(t0) -> out
//
func (c *Circuit) String() string {
	var b strings.Builder
	for _, g := range c.gates {
		if g.name == "IN" {
			continue
		}
		b.WriteString(g.name)
		b.WriteByte('(')
		for i, n := range g.in {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(c.names[n])
		}
		b.WriteString(") -> ")
		b.WriteString(c.names[g.out])
		b.WriteByte('\n')
	}
	if c.out == cstFalse {
		b.WriteString("false -> out\n")
	}
	return b.String()
}
