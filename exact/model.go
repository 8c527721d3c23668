// SPDX-License-Identifier: MIT
//
// File: model.go
// Role: integer-programming formulation of Maximum Cut.

package exact

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/maxcut/core"
)

// Var indexes a model variable: [0, V) are vertex variables x_v and
// [V, V+E) are edge variables y_e in AllEdges order.
type Var int

// Term is Coef · Var.
type Term struct {
	Var  Var
	Coef int
}

// Constraint is Σ Terms ≤ RHS.
type Constraint struct {
	Terms []Term
	RHS   int
}

// Model is the binary program max Σ y_e s.t. the two cut constraints per edge.
type Model struct {
	Vertices    int
	Edges       []core.Edge
	Objective   []Term
	Constraints []Constraint
}

// BuildModel formulates g as a binary program. Edges are copied.
//
// Complexity: O(V + E).
func BuildModel(g *core.Graph) *Model {
	n := g.Size()
	edges := g.Edges()
	m := &Model{
		Vertices:    n,
		Edges:       edges,
		Objective:   make([]Term, len(edges)),
		Constraints: make([]Constraint, 0, 2*len(edges)),
	}
	for i, e := range edges {
		y := m.EdgeVar(i)
		xa, xb := Var(e.A), Var(e.B)
		m.Objective[i] = Term{Var: y, Coef: 1}
		// y − xa − xb ≤ 0
		m.Constraints = append(m.Constraints, Constraint{
			Terms: []Term{{y, 1}, {xa, -1}, {xb, -1}},
			RHS:   0,
		})
		// y + xa + xb ≤ 2
		m.Constraints = append(m.Constraints, Constraint{
			Terms: []Term{{y, 1}, {xa, 1}, {xb, 1}},
			RHS:   2,
		})
	}
	return m
}

// NumVars returns V + E.
func (m *Model) NumVars() int { return m.Vertices + len(m.Edges) }

// EdgeVar returns the variable of the i-th edge.
func (m *Model) EdgeVar(i int) Var { return Var(m.Vertices + i) }

// Name returns "x<v>" for vertex variables and "y<i>" for edge variables.
func (m *Model) Name(v Var) string {
	if int(v) < m.Vertices {
		return fmt.Sprintf("x%d", v)
	}
	return fmt.Sprintf("y%d", int(v)-m.Vertices)
}

// Assign returns the variable values induced by p: x_v = side of v and
// y_e = 1 exactly when p separates e.
func (m *Model) Assign(p core.Partition) []int {
	vals := make([]int, m.NumVars())
	for v := 0; v < m.Vertices; v++ {
		vals[v] = p.Side(v)
	}
	for i, e := range m.Edges {
		if p.Separates(e) {
			vals[m.Vertices+i] = 1
		}
	}
	return vals
}

// Feasible reports whether vals satisfies every constraint and is binary.
func (m *Model) Feasible(vals []int) bool {
	if len(vals) != m.NumVars() {
		return false
	}
	for _, x := range vals {
		if x != 0 && x != 1 {
			return false
		}
	}
	for _, c := range m.Constraints {
		lhs := 0
		for _, t := range c.Terms {
			lhs += t.Coef * vals[t.Var]
		}
		if lhs > c.RHS {
			return false
		}
	}
	return true
}

// Value returns the objective at vals.
func (m *Model) Value(vals []int) int {
	total := 0
	for _, t := range m.Objective {
		total += t.Coef * vals[t.Var]
	}
	return total
}

// WriteLP renders the model in CPLEX LP format.
func (m *Model) WriteLP(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Maximize")
	fmt.Fprint(bw, " obj:")
	if len(m.Objective) == 0 {
		fmt.Fprint(bw, " 0 x0")
	}
	m.writeTerms(bw, m.Objective)
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "Subject To")
	for i, c := range m.Constraints {
		fmt.Fprintf(bw, " c%d:", i)
		m.writeTerms(bw, c.Terms)
		fmt.Fprintf(bw, " <= %d\n", c.RHS)
	}

	fmt.Fprintln(bw, "Binary")
	for v := 0; v < m.NumVars(); v++ {
		fmt.Fprintf(bw, " %s\n", m.Name(Var(v)))
	}
	fmt.Fprintln(bw, "End")
	return bw.Flush()
}

func (m *Model) writeTerms(w io.Writer, terms []Term) {
	for i, t := range terms {
		sign := "+"
		coef := t.Coef
		if coef < 0 {
			sign, coef = "-", -coef
		}
		switch {
		case i == 0 && sign == "+":
			fmt.Fprint(w, " ")
		default:
			fmt.Fprintf(w, " %s ", sign)
		}
		if coef != 1 {
			fmt.Fprintf(w, "%d ", coef)
		}
		fmt.Fprint(w, m.Name(t.Var))
	}
}
