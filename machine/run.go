package machine

import (
	"bytes"
	"strings"
)

// Run executes a program over an input string, and returns everything the
// program wrote. Each call uses its own tape and state, so Run may be
// called concurrently.
//
// Unrecognized characters end the program. On error, no output is
// returned.
func Run(program string, input string) (output string, err error) {
	return RunWith(program, input, POLICY_TERMINATE)
}

// RunWith is Run with an explicit policy for unrecognized characters.
func RunWith(program string, input string, policy Policy) (output string, err error) {
	var buffer bytes.Buffer

	m := NewMachine(Compile(program), strings.NewReader(input), &buffer)
	m.Policy = policy

	err = m.Run()
	if err != nil {
		return
	}

	output = buffer.String()
	return
}
