package tlox

// Interpreter wires the scanner, token stream, parser and evaluator into a
// single pipeline, and keeps one Evaluator alive across calls so a REPL
// session's top-level `var` and `fun` bindings persist from one line to the
// next.
type Interpreter struct {
	eval *Evaluator
}

// NewInterpreter creates an interpreter whose program output goes to out, with
// natives registered as the initial global bindings.
func NewInterpreter(out OutputSink, natives []*NativeFunction) *Interpreter {
	ev := NewEvaluator(out)
	RegisterPrelude(ev.Env(), natives)

	return &Interpreter{eval: ev}
}

// Run scans, parses and evaluates source against the interpreter's existing
// environment. It returns the first error raised by any stage: a
// ScanningError is returned as is once the parser reads the Invalid token
// carrying it, a ParsingError aborts before evaluation begins, and
// a RuntimeError aborts the statement it occurred in along with everything
// after it in this call.
func (in *Interpreter) Run(source string) error {
	scanner := NewScanner(source)
	ts := NewTokenStream(scanner)
	defer ts.Drain()

	stmts, err := NewParser(ts).Parse()
	if err != nil {
		return err
	}

	return in.eval.Interpret(stmts)
}
