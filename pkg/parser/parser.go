package parser

import (
	"fmt"
	"strings"

	"worldlang/pkg/lexer"
)

// Node is a parse tree node produced by a kept grammar rule
type Node struct {
	Rule     string  // rule that produced this node
	Text     string  // matched input
	Offset   int     // offset of the match in the normalized input
	Children []*Node // nodes produced by kept sub-rules, in input order
}

// String renders the subtree in an indented form, one node per line
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b, 0)
	return b.String()
}

func (n *Node) write(b *strings.Builder, depth int) {
	fmt.Fprintf(b, "%s%s", strings.Repeat("  ", depth), n.Rule)
	if len(n.Children) == 0 {
		fmt.Fprintf(b, " %q", n.Text)
	}
	b.WriteByte('\n')
	for _, c := range n.Children {
		c.write(b, depth+1)
	}
}

// Expr is a parsing expression. match returns the end offset and the nodes
// produced by kept rules when it succeeds at pos.
type Expr interface {
	match(p *Parser, pos int) (int, []*Node, bool)
}

type seq []Expr
type choice []Expr
type opt struct{ e Expr }
type star struct{ e Expr }
type plus struct{ e Expr }
type ref string

func (s seq) match(p *Parser, pos int) (int, []*Node, bool) {
	var nodes []*Node
	end := pos
	for _, e := range s {
		next, ns, ok := e.match(p, end)
		if !ok {
			return pos, nil, false
		}
		end = next
		nodes = append(nodes, ns...)
	}
	return end, nodes, true
}

// ordered choice: the first alternative that matches wins
func (c choice) match(p *Parser, pos int) (int, []*Node, bool) {
	for _, e := range c {
		if end, nodes, ok := e.match(p, pos); ok {
			return end, nodes, true
		}
	}
	return pos, nil, false
}

func (o opt) match(p *Parser, pos int) (int, []*Node, bool) {
	if end, nodes, ok := o.e.match(p, pos); ok {
		return end, nodes, true
	}
	return pos, nil, true
}

func (s star) match(p *Parser, pos int) (int, []*Node, bool) {
	var nodes []*Node
	end := pos
	for {
		next, ns, ok := s.e.match(p, end)
		if !ok || next == end {
			return end, nodes, true
		}
		end = next
		nodes = append(nodes, ns...)
	}
}

func (s plus) match(p *Parser, pos int) (int, []*Node, bool) {
	end, nodes, ok := s.e.match(p, pos)
	if !ok {
		return pos, nil, false
	}
	rest, more, _ := star(s).match(p, end)
	return rest, append(append([]*Node(nil), nodes...), more...), true
}

type memoKey struct {
	rule string
	pos  int
}

type memoEntry struct {
	end   int
	nodes []*Node
	ok    bool
}

func (r ref) match(p *Parser, pos int) (int, []*Node, bool) {
	key := memoKey{string(r), pos}
	if m, hit := p.memo[key]; hit {
		return m.end, m.nodes, m.ok
	}

	production, exists := p.grammar[string(r)]
	if !exists {
		panic(fmt.Sprintf("grammar has no rule %q", string(r)))
	}

	end, nodes, ok := production.RHS.match(p, pos)
	if ok && production.Keep {
		nodes = []*Node{{
			Rule:     production.LHS,
			Text:     p.input[pos:end],
			Offset:   pos,
			Children: nodes,
		}}
	}

	p.memo[key] = memoEntry{end, nodes, ok}
	return end, nodes, ok
}

type Parser struct {
	input    string                   // normalized source
	source   string                   // source as given, for positions
	offsets  []int                    // normalized offset -> source offset
	grammar  Grammar                  // rule name -> production
	memo     map[memoKey]memoEntry    // packrat memo of rule results
	farthest int                      // farthest offset at which a terminal failed
	expected map[lexer.TokenType]bool // terminals expected at farthest
}

// NewParser creates a parser over src after whitespace normalization
func NewParser(src string) *Parser {
	input, offsets := lexer.NormalizeOffsets(src)
	p := newParser(input)
	p.source = src
	p.offsets = offsets
	return p
}

func newParser(input string) *Parser {
	return &Parser{
		input:    input,
		grammar:  NewGrammar(),
		memo:     make(map[memoKey]memoEntry),
		farthest: -1,
		expected: make(map[lexer.TokenType]bool),
	}
}

// Input returns the normalized source being parsed
func (p *Parser) Input() string {
	return p.input
}

// Parse matches the whole input against the program rule. There is no
// partial result: on failure the tree is nil and the error is a *SyntaxError.
func (p *Parser) Parse() (*Node, error) {
	_, nodes, ok := ref(RuleProgram).match(p, 0)
	if !ok || len(nodes) != 1 {
		return nil, p.syntaxError()
	}
	return nodes[0], nil
}

// Parse normalizes and parses src
func Parse(src string) (*Node, error) {
	return NewParser(src).Parse()
}

// MatchRule reports whether rule matches the entire input, which is used verbatim
func MatchRule(rule, input string) bool {
	p := newParser(input)
	if _, exists := p.grammar[rule]; !exists {
		return false
	}
	end, _, ok := ref(rule).match(p, 0)
	return ok && end == len(input)
}

// expect records a terminal failure for diagnostics
func (p *Parser) expect(pos int, t lexer.TokenType) {
	if pos > p.farthest {
		p.farthest = pos
		p.expected = map[lexer.TokenType]bool{t: true}
	} else if pos == p.farthest {
		p.expected[t] = true
	}
}

// position converts an offset in the normalized input to a line and column
// of the source as given
func (p *Parser) position(offset int) lexer.Position {
	if p.offsets == nil {
		return lexer.PositionAt(p.input, offset)
	}
	offset = min(max(offset, 0), len(p.offsets)-1)
	return lexer.PositionAt(p.source, p.offsets[offset])
}
