package codegen

import (
	"strings"

	"github.com/charmbracelet/log"

	"worldlang/pkg/parser"
)

// programAction lowers every statement in order
func (c *Codegen) programAction(n *parser.Node) {
	c.lowerChildren(n)
}

// statementAction lowers one statement and terminates it with endline.
// A call other than if/for followed by a code block declares a function.
func (c *Codegen) statementAction(n *parser.Node) {
	kids := n.Children
	if len(kids) == 2 && kids[0].Rule == parser.RuleFunction && kids[1].Rule == parser.RuleCodeBlock {
		call, body := kids[0], kids[1]
		c.ExecuteAction(call)
		if name := calleeName(call); name != FuncIf && name != FuncFor && len(c.pb) > 0 {
			c.pb[len(c.pb)-1].Kind = KindFunctionDecl
		}
		c.ExecuteAction(body)
	} else {
		c.lowerChildren(n)
	}

	c.emitOp(OpEndline)
}

// functionAction emits endargs, the arguments in source order, then the call
func (c *Codegen) functionAction(n *parser.Node) {
	if len(n.Children) == 0 || n.Children[0].Rule != parser.RuleIdentifier {
		c.addMalformedError(n, "call without a callee")
		return
	}

	c.emitOp(OpEndargs)
	for _, arg := range n.Children[1:] {
		c.ExecuteAction(arg)
	}
	c.emit(KindFunctionCall, n.Children[0].Text)
}

// assignAction emits endargs, targets, endargs, values, then '='
func (c *Codegen) assignAction(n *parser.Node) {
	if len(n.Children) != 2 {
		c.addMalformedError(n, "assignment needs targets and values")
		return
	}

	c.emitOp(OpEndargs)
	c.ExecuteAction(n.Children[0])
	c.emitOp(OpEndargs)
	c.ExecuteAction(n.Children[1])
	c.emitOp(OpAssign)
}

// tierAction folds `x op y op z` left to right into x y op z op
func (c *Codegen) tierAction(n *parser.Node) {
	kids := n.Children
	if len(kids)%2 == 0 {
		c.addMalformedError(n, "operator without operand")
		return
	}

	c.ExecuteAction(kids[0])
	for i := 1; i+1 < len(kids); i += 2 {
		c.ExecuteAction(kids[i+1])
		c.emitOp(kids[i].Text)
	}
}

// codeBlockAction brackets the block's statements with start_block/end_block
func (c *Codegen) codeBlockAction(n *parser.Node) {
	c.emitOp(OpStartBlock)
	c.lowerChildren(n)
	c.emitOp(OpEndBlock)
}

func (c *Codegen) numberAction(n *parser.Node) {
	c.emit(KindNumber, n.Text)
}

func (c *Codegen) stringAction(n *parser.Node) {
	c.emit(KindString, strings.TrimSuffix(strings.TrimPrefix(n.Text, `"`), `"`))
}

func (c *Codegen) identifierAction(n *parser.Node) {
	c.emit(KindIdentifier, n.Text)
}

// commentAction emits nothing
func (c *Codegen) commentAction(*parser.Node) {}

func (c *Codegen) lowerChildren(n *parser.Node) {
	for _, child := range n.Children {
		c.ExecuteAction(child)
	}
}

// calleeName returns the name of the function a call node invokes
func calleeName(call *parser.Node) string {
	if len(call.Children) == 0 {
		return ""
	}
	return call.Children[0].Text
}

func (c *Codegen) semanticActions() map[string]func(*parser.Node) {
	return map[string]func(*parser.Node){
		parser.RuleProgram:        c.programAction,
		parser.RuleStatement:      c.statementAction,
		parser.RuleFunction:       c.functionAction,
		parser.RuleAssignment:     c.assignAction,
		parser.RuleIdentifierList: c.lowerChildren,
		parser.RuleExpressionList: c.lowerChildren,
		parser.RuleExpression:     c.tierAction,
		parser.RuleAdd:            c.tierAction,
		parser.RuleMul:            c.tierAction,
		parser.RuleCodeBlock:      c.codeBlockAction,
		parser.RuleNumber:         c.numberAction,
		parser.RuleString:         c.stringAction,
		parser.RuleIdentifier:     c.identifierAction,
		parser.RuleComment:        c.commentAction,
	}
}

// ExecuteAction lowers the node with the action registered for its rule
func (c *Codegen) ExecuteAction(n *parser.Node) {
	if n == nil {
		c.addMalformedError(nil, "missing node")
		return
	}

	if action, exists := c.actions[n.Rule]; exists {
		action(n)
	} else {
		log.Error("Unknown parse tree node", "rule", n.Rule)
		c.addMalformedError(n, "unexpected node")
	}
}
