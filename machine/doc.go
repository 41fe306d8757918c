// Package machine implements the BrainLuck virtual machine.
//
// A Program is the raw instruction text plus a precomputed table of
// bracket pairs. A Machine holds the state of one execution: the
// instruction pointer, the data tape, the input and output streams and a
// tick counter. Each Tick decodes the instruction under the instruction
// pointer and executes it.
//
// The eight instructions are:
//
//	>  move the data pointer right
//	<  move the data pointer left
//	+  increment the cell, 255 wraps to 0
//	-  decrement the cell, 0 wraps to 255
//	.  write the cell to the output
//	,  read one input byte into the cell
//	[  if the cell is zero, jump past the matching ]
//	]  if the cell is not zero, jump past the matching [
//
// Any other character ends execution, unless the machine policy is
// POLICY_SKIP, in which case it is ignored.
package machine
