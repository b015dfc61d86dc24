// Package workflow holds the status graphs shared by appointments and purchases.
package workflow

import (
	"github.com/BruksfildServices01/salon-backoffice/internal/httperr"
	"github.com/BruksfildServices01/salon-backoffice/internal/validation"
)

var ErrInvalidTransition = httperr.ErrBusiness(httperr.CodeInvalidTransition)

// Graph lists the direct successors of every known status. Statuses with no
// successors are terminal.
type Graph[S ~string] map[S][]S

func (g Graph[S]) Known(s S) bool {
	_, ok := g[s]
	return ok
}

func (g Graph[S]) Terminal(s S) bool {
	return len(g[s]) == 0
}

// Reachable reports whether to can be reached from from by following one or more edges.
func (g Graph[S]) Reachable(from, to S) bool {
	seen := map[S]bool{from: true}
	stack := append([]S(nil), g[from]...)
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s == to {
			return true
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		stack = append(stack, g[s]...)
	}
	return false
}

// Check validates moving from -> to. Staying put is always accepted.
func (g Graph[S]) Check(from, to S) error {
	if !g.Known(to) {
		return validation.Errors{"status": validation.ReasonInvalidChoice}
	}
	if from == to {
		return nil
	}
	if !g.Reachable(from, to) {
		return ErrInvalidTransition
	}
	return nil
}
