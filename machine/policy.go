package machine

// Policy selects how the machine treats characters that are not one of
// the eight instructions.
type Policy int

//go:generate go tool stringer -linecomment -type=Policy
const (
	POLICY_TERMINATE = Policy(0) // terminate
	POLICY_SKIP      = Policy(1) // skip
)
