// Package domain holds the entities of the state transition table model and
// the error taxonomy shared between the parser and its consumers.
//
// States have no registry of their own: any string that appears as a source
// or destination is implicitly a valid state.
package domain
