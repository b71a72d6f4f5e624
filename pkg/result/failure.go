package result

// PreconditionFailure is the panic value of Expect and ExpectErr when the
// caller's assumption about the active variant is wrong.
type PreconditionFailure struct {
	Msg string
}

func (f *PreconditionFailure) Error() string {
	return f.Msg
}

// UnexpectedState is the panic value of UnwrapErr on an Ok and of any
// combinator handed a nil Result.
type UnexpectedState struct {
	Msg string
}

func (f *UnexpectedState) Error() string {
	return "result: " + f.Msg
}

func nilResult() *UnexpectedState {
	return &UnexpectedState{Msg: "nil Result"}
}
