package codegen

import (
	"fmt"

	"worldlang/pkg/parser"
)

// MalformedTreeError reports a parse tree the grammar could not have produced
type MalformedTreeError struct {
	Rule   string
	Offset int
	Reason string
}

func (e *MalformedTreeError) Error() string {
	if e.Rule == "" {
		return fmt.Sprintf("malformed parse tree: %s", e.Reason)
	}
	return fmt.Sprintf("malformed parse tree: %s in %s at offset %d", e.Reason, e.Rule, e.Offset)
}

func (c *Codegen) addMalformedError(n *parser.Node, reason string) {
	e := &MalformedTreeError{Reason: reason}
	if n != nil {
		e.Rule = n.Rule
		e.Offset = n.Offset
	}
	c.errors = append(c.errors, e)
}
