package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompile(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		text  string
		pairs map[int]int // Open to close.
	}){
		{"empty", "", map[int]int{}},
		{"flat", "+-<>.,", map[int]int{}},
		{"single", "[]", map[int]int{0: 1}},
		{"nested", "[[]]", map[int]int{0: 3, 1: 2}},
		{"siblings", "[][]", map[int]int{0: 1, 2: 3}},
		{"echo", ",[.[-],]", map[int]int{1: 7, 3: 5}},
		{"comment", "[ a ]b", map[int]int{0: 4}},
	}

	for _, entry := range table {
		prog := Compile(entry.text)
		assert.Equal(entry.text, prog.Text(), entry.name)
		assert.Equal(len(entry.text), prog.Len(), entry.name)

		for open, end := range entry.pairs {
			index, err := prog.MatchClose(open)
			assert.NoError(err, entry.name)
			assert.Equal(end, index, entry.name)

			index, err = prog.MatchOpen(end)
			assert.NoError(err, entry.name)
			assert.Equal(open, index, entry.name)
		}
	}
}

func TestCompile_Unbalanced(t *testing.T) {
	assert := assert.New(t)

	prog := Compile("[")
	_, err := prog.MatchClose(0)
	assert.ErrorIs(err, ErrUnbalancedBrackets)

	prog = Compile("]")
	_, err = prog.MatchOpen(0)
	assert.ErrorIs(err, ErrUnbalancedBrackets)

	// Inner pair still matches.
	prog = Compile("[[]")
	_, err = prog.MatchClose(0)
	assert.ErrorIs(err, ErrUnbalancedBrackets)
	index, err := prog.MatchClose(1)
	assert.NoError(err)
	assert.Equal(2, index)

	prog = Compile("[]]")
	_, err = prog.MatchOpen(2)
	assert.ErrorIs(err, ErrUnbalancedBrackets)
	index, err = prog.MatchOpen(1)
	assert.NoError(err)
	assert.Equal(0, index)

	// Not a bracket.
	prog = Compile("+[]")
	_, err = prog.MatchClose(0)
	assert.ErrorIs(err, ErrUnbalancedBrackets)
	_, err = prog.MatchOpen(1)
	assert.ErrorIs(err, ErrUnbalancedBrackets)
	_, err = prog.MatchClose(9)
	assert.ErrorIs(err, ErrUnbalancedBrackets)
}

func TestProgram_At(t *testing.T) {
	assert := assert.New(t)

	prog := Compile("+x")
	assert.Equal(OP_INC, prog.At(0))
	assert.Equal(OP_NONE, prog.At(1))
	assert.Equal(OP_NONE, prog.At(2))
	assert.Equal(OP_NONE, prog.At(-1))
}

func TestProgram_Ops(t *testing.T) {
	assert := assert.New(t)

	var ops []Op
	for ip, op := range Compile("+ [").Ops() {
		assert.Equal(len(ops), ip)
		ops = append(ops, op)
	}
	assert.Equal([]Op{OP_INC, OP_NONE, OP_JUMP_FWD}, ops)

	for ip := range Compile("+++").Ops() {
		if ip == 1 {
			break
		}
	}
}

// checkScan verifies the bracket table against a linear rescan.
func checkScan(t *testing.T, text string) {
	assert := assert.New(t)

	prog := Compile(text)
	for ip, op := range prog.Ops() {
		switch op {
		case OP_JUMP_FWD:
			want, wantErr := prog.ScanClose(ip)
			got, gotErr := prog.MatchClose(ip)
			assert.Equal(wantErr, gotErr, "%q ip %d", text, ip)
			assert.Equal(want, got, "%q ip %d", text, ip)
		case OP_JUMP_BACK:
			want, wantErr := prog.ScanOpen(ip)
			got, gotErr := prog.MatchOpen(ip)
			assert.Equal(wantErr, gotErr, "%q ip %d", text, ip)
			assert.Equal(want, got, "%q ip %d", text, ip)
		}
	}
}

func TestProgram_Scan(t *testing.T) {
	for _, text := range []string{
		"",
		"[",
		"]",
		"][",
		"[[]",
		"[]]",
		"[[][]]",
		"]][[[]]",
		",>,<[>[->+>+<<]>>[-<<+>>]<<<-]>>.",
		"+[x[y]z]]]",
	} {
		checkScan(t, text)
	}
}

func FuzzProgram_Scan(f *testing.F) {
	f.Add("[[]]")
	f.Add("][][")
	f.Add(",[.[-],]")
	f.Add("[a[b]c")

	f.Fuzz(func(t *testing.T, text string) {
		checkScan(t, text)
	})
}
