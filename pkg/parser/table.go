package parser

import "worldlang/pkg/lexer"

// Rule names that produce parse tree nodes
const (
	RuleNumber         = "number"
	RuleString         = "string"
	RuleIdentifier     = "identifier"
	RuleIdentifierList = "identifier_list"
	RuleExpressionList = "expression_list"
	RuleOpMul          = "op_prio_mul"
	RuleOpAdd          = "op_prio_add"
	RuleOpCmp          = "op_prio_cmp"
	RuleMul            = "mul"
	RuleAdd            = "add"
	RuleExpression     = "expression"
	RuleFunction       = "function"
	RuleAssignment     = "assignment"
	RuleComment        = "comment"
	RuleCodeBlock      = "code_block"
	RuleStatement      = "statement"
	RuleProgram        = "program"

	ruleElement = "element"
)

type Production struct {
	LHS  string
	RHS  Expr
	Keep bool // whether a match produces a Node
}

type Grammar map[string]Production

var grammar = []Production{
	// \-?[0-9]+(.[0-9]+)?
	{LHS: RuleNumber, RHS: tok(lexer.NUM), Keep: true},
	{LHS: RuleString, RHS: tok(lexer.STRING), Keep: true},
	{LHS: RuleIdentifier, RHS: tok(lexer.ID), Keep: true},

	{LHS: RuleIdentifierList, RHS: seq{ref(RuleIdentifier), star{seq{tok(lexer.COMMA), ref(RuleIdentifier)}}}, Keep: true},
	{LHS: RuleExpressionList, RHS: seq{ref(RuleExpression), star{seq{tok(lexer.COMMA), ref(RuleExpression)}}}, Keep: true},

	// function must be tried before identifier, as both start with an identifier
	{LHS: ruleElement, RHS: choice{
		ref(RuleFunction),
		ref(RuleIdentifier),
		ref(RuleNumber),
		ref(RuleString),
		seq{tok(lexer.LPAREN), ref(RuleExpression), tok(lexer.RPAREN)},
	}},

	{LHS: RuleOpMul, RHS: choice{tok(lexer.MULT), tok(lexer.DIV)}, Keep: true},
	{LHS: RuleOpAdd, RHS: choice{tok(lexer.PLUS), tok(lexer.MINUS)}, Keep: true},
	{LHS: RuleOpCmp, RHS: choice{tok(lexer.EQ), tok(lexer.NE), tok(lexer.LE), tok(lexer.GE), tok(lexer.LT), tok(lexer.GT)}, Keep: true},

	// Tiers repeat instead of recursing left; codegen folds them left to right
	{LHS: RuleMul, RHS: seq{ref(ruleElement), star{seq{ref(RuleOpMul), ref(ruleElement)}}}, Keep: true},
	{LHS: RuleAdd, RHS: seq{ref(RuleMul), star{seq{ref(RuleOpAdd), ref(RuleMul)}}}, Keep: true},
	{LHS: RuleExpression, RHS: seq{ref(RuleAdd), star{seq{ref(RuleOpCmp), ref(RuleAdd)}}}, Keep: true},

	{LHS: RuleFunction, RHS: seq{ref(RuleIdentifier), tok(lexer.LPAREN), opt{ref(RuleExpressionList)}, tok(lexer.RPAREN)}, Keep: true},
	{LHS: RuleAssignment, RHS: seq{ref(RuleIdentifierList), tok(lexer.ASSIGN), ref(RuleExpressionList)}, Keep: true},
	{LHS: RuleComment, RHS: tok(lexer.COMMENT), Keep: true},

	{LHS: RuleCodeBlock, RHS: seq{tok(lexer.LBRACE), tok(lexer.NEWLINE), star{ref(RuleStatement)}, tok(lexer.RBRACE), tok(lexer.NEWLINE)}, Keep: true},

	{LHS: RuleStatement, RHS: choice{
		seq{ref(RuleFunction), ref(RuleCodeBlock)},
		seq{opt{choice{ref(RuleFunction), ref(RuleAssignment)}}, opt{ref(RuleComment)}, tok(lexer.NEWLINE)},
	}, Keep: true},

	{LHS: RuleProgram, RHS: seq{plus{ref(RuleStatement)}, eof{}}, Keep: true},
}

// NewGrammar returns the worldlang grammar indexed by rule name
func NewGrammar() Grammar {
	g := make(Grammar, len(grammar))
	for _, production := range grammar {
		g[production.LHS] = production
	}
	return g
}
