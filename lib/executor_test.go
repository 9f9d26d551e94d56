package lib

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunCommandsToggles(t *testing.T) {
	commands := ParseCommands("do()mul(1,1)don't()mul(2,2)do()mul(3,3)")
	require.Equal(t, uint32(10), RunCommands(commands))
	require.Equal(t, uint32(14), SumProducts(commands))
}

func TestRunCommandsStartsEnabled(t *testing.T) {
	require.Equal(t, uint32(6), RunCommands([]Command{Mul{A: 2, B: 3}}))
}

func TestRunCommandsEmpty(t *testing.T) {
	require.Equal(t, uint32(0), RunCommands(nil))
	require.Equal(t, uint32(0), SumProducts(nil))
	require.Equal(t, uint32(0), RunCommands(ParseCommands("")))
}

func TestRunCommandsDontIsSticky(t *testing.T) {
	commands := []Command{Dont{}, Mul{A: 5, B: 5}, Dont{}, Mul{A: 1, B: 9}}
	require.Equal(t, uint32(0), RunCommands(commands))
	require.Equal(t, uint32(34), SumProducts(commands))
}

func TestExecutorState(t *testing.T) {
	e := newExecutor()
	require.Equal(t, stateDo, e.state)

	e.execute(Dont{})
	require.Equal(t, stateDont, e.state)

	e.execute(Mul{A: 7, B: 7})
	require.Equal(t, stateDont, e.state)
	require.Equal(t, uint32(0), e.sum)

	e.execute(Do{})
	e.execute(Mul{A: 7, B: 7})
	require.Equal(t, stateDo, e.state)
	require.Equal(t, uint32(49), e.sum)
}

func TestRunCommandsWraps(t *testing.T) {
	commands := []Command{Mul{A: math.MaxUint32, B: 1}, Mul{A: 2, B: 1}}
	require.Equal(t, uint32(1), RunCommands(commands))
	require.Equal(t, uint32(1), SumProducts(commands))
}

func TestNoMulMeansZero(t *testing.T) {
	require.Equal(t, uint32(0), SumProducts(ParseCommands("do()don't()mul(1,x)")))
}
