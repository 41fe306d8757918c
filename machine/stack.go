package machine

// Stack of instruction pointers, used to pair brackets.
type Stack struct {
	Data []int
}

func (s *Stack) Push(value int) {
	s.Data = append(s.Data, value)
}

func (s *Stack) Pop() (value int, ok bool) {
	if s.Empty() {
		return
	}

	value, ok = s.Data[len(s.Data)-1], true
	s.Data = s.Data[:len(s.Data)-1]
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}
