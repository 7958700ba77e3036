package interpreter

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAndAs(t *testing.T) {
	i := NewInterpreter(WithWriter(&bytes.Buffer{}))
	i.SetVariable("n", Double(2))
	i.SetVariable("s", String("x"))

	assert.True(t, Has[Double](i, Double(1)))
	assert.True(t, Has[Double](i, Identifier("n")))
	assert.False(t, Has[String](i, Identifier("n")))
	assert.True(t, Has[Identifier](i, Identifier("n")), "identifiers are identifiers before lookup")
	assert.True(t, Has[*Callable](i, Identifier("print")))
	assert.False(t, i.Failed())

	assert.Equal(t, Double(2), As[Double](i, Identifier("n")))
	assert.Equal(t, String("x"), As[String](i, Identifier("s")))
	assert.False(t, i.Failed())

	assert.Equal(t, Double(0), As[Double](i, Identifier("s")))
	assert.Equal(t, "Runtime type error: expected double, got string", i.ErrorMessage())
}

func TestHasUnboundIdentifier(t *testing.T) {
	i := NewInterpreter(WithWriter(&bytes.Buffer{}))

	assert.False(t, Has[Double](i, Identifier("missing")))
	assert.Equal(t, "Variable missing does not exist!", i.ErrorMessage())
}

func TestVarPanics(t *testing.T) {
	i := NewInterpreter(WithWriter(&bytes.Buffer{}))
	i.SetVariable("n", Double(2))

	assert.Equal(t, Double(2), Var[Double](i, "n"))
	assert.Panics(t, func() { Var[Double](i, "missing") })
	assert.Panics(t, func() { Var[String](i, "n") })
}

func TestValueString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Double(3), "3"},
		{Double(1) / 3, "0.3333333333333333"},
		{Double(1e21), "1e+21"},
		{Double(math.Inf(-1)), "-Inf"},
		{Uint(7), "7"},
		{String("hi"), "hi"},
		{Identifier("a"), "a"},
		{&Callable{Name: "f"}, "<function f>"},
		{endargs{}, "<endargs>"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, test.v.String())
	}
	assert.Equal(t, "callable", KindCallable.String())
}

func TestForBlockRange(t *testing.T) {
	up := &ForBlock{Current: 4, End: 4, Step: 1}
	assert.True(t, up.inRange())
	up.Current += up.Step
	assert.False(t, up.inRange())

	down := &ForBlock{Current: 0, End: 0, Step: -1}
	assert.True(t, down.inRange())
	down.Current += down.Step
	assert.False(t, down.inRange())
}

func TestFramesUnwindAfterRun(t *testing.T) {
	i := NewInterpreter(WithWriter(&bytes.Buffer{}))
	ok := i.Run("f() {\n  for(k, 1, 2) {\n    if(k) {\n    }\n  }\n}\nf()\n")

	assert.True(t, ok, i.ErrorMessage())
	assert.Equal(t, 0, i.calls.Size())
	assert.Equal(t, 0, i.StackSize())
}
