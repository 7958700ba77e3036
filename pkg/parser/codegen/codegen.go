package codegen

import (
	"worldlang/pkg/parser"
)

type Codegen struct {
	pb      []CodeUnit                    // Program Block (lowered units)
	actions map[string]func(*parser.Node) // rule name -> lowering action
	errors  []error                       // malformed tree reports
}

// NewCodegen creates a new Codegen instance
func NewCodegen() *Codegen {
	c := &Codegen{
		pb: make([]CodeUnit, 0),
	}
	c.actions = c.semanticActions()
	return c
}

// GetProgram returns the generated program block
func (c *Codegen) GetProgram() []CodeUnit {
	return c.pb
}

// GetErrors returns the lowering errors
func (c *Codegen) GetErrors() []error {
	return c.errors
}

// emit appends a unit to the program block
func (c *Codegen) emit(kind Kind, text string) {
	c.pb = append(c.pb, CodeUnit{Kind: kind, Text: text})
}

// emitOp appends an operation unit to the program block
func (c *Codegen) emitOp(op Operation) {
	c.pb = append(c.pb, Op(op))
}

// Lower flattens a parse tree into code units. A tree that does not have the
// shape the grammar produces yields an error and no units.
func Lower(root *parser.Node) ([]CodeUnit, error) {
	c := NewCodegen()
	c.ExecuteAction(root)
	if errs := c.GetErrors(); len(errs) > 0 {
		return nil, errs[0]
	}
	return c.GetProgram(), nil
}

// Compile parses and lowers src. On a parse failure the unit sequence is empty.
func Compile(src string) ([]CodeUnit, error) {
	root, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return Lower(root)
}
