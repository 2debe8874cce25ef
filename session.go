package exprlang

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Session runs sources through scanner, parser, checker and interpreter.
// Variables persist from one run to the next.
type Session struct {
	cfg     *Config
	checker *Checker
	interp  *Interpreter
	out     io.Writer
	trace   *log.Logger
}

func NewSession(cfg *Config) *Session {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	std := NewStdEnv()
	s := &Session{
		cfg:     cfg,
		checker: NewChecker(std),
		interp:  NewInterpreter(std, cfg.Quirks),
		out:     os.Stdout,
		trace:   log.New(io.Discard, "", 0),
	}
	if cfg.Trace {
		s.trace = log.New(os.Stderr, "trace: ", 0)
	}
	return s
}

// SetOutput redirects print output and echo.
func (s *Session) SetOutput(w io.Writer) {
	s.out = w
}

// SetTrace sends trace output to l.
func (s *Session) SetTrace(l *log.Logger) {
	s.trace = l
}

func (s *Session) Checker() *Checker { return s.checker }

func (s *Session) Interpreter() *Interpreter { return s.interp }

// Parse scans and parses one source.
func (s *Session) Parse(name string, r io.Reader) (*Ast, error) {
	tokens, err := NewScanner(name, r).ScanAll()
	if err != nil {
		return nil, err
	}
	for _, tok := range tokens {
		s.trace.Println(tok)
	}
	ast, err := NewParser(tokens).Parse()
	if err != nil {
		return nil, err
	}
	s.trace.Printf("parsed:\n%s", Format(ast))
	return ast, nil
}

// Eval checks and interprets ast. On error both the identifier table and
// the runtime environment are restored to their state before the call.
func (s *Session) Eval(ast *Ast) (Value, error) {
	table := s.checker.table.Clone()
	runtime := s.interp.runtime.Clone()

	if err := s.checker.Check(ast); err != nil {
		s.checker.table = table
		return NoneValue(), err
	}
	for _, expr := range ast.Exprs {
		s.trace.Printf("checked: %s : %v", FormatExpr(expr), typeOf(expr))
	}

	s.interp.out = s.out
	v, err := s.interp.Interpret(ast)
	if err != nil {
		s.checker.table = table
		s.interp.runtime = runtime
		return NoneValue(), err
	}
	return v, nil
}

// Run parses and evaluates one source, echoing the final value when the
// configuration asks for it.
func (s *Session) Run(name string, r io.Reader) (Value, error) {
	return s.run(name, r, s.cfg.Echo)
}

// RunString is Run on an in-memory source.
func (s *Session) RunString(name, src string) (Value, error) {
	return s.Run(name, strings.NewReader(src))
}

func (s *Session) run(name string, r io.Reader, echo bool) (Value, error) {
	ast, err := s.Parse(name, r)
	if err != nil {
		return NoneValue(), err
	}
	v, err := s.Eval(ast)
	if err != nil {
		return NoneValue(), err
	}
	if echo && !v.IsNone() {
		fmt.Fprintln(s.out, v)
	}
	return v, nil
}

// Echo runs a source and always echoes its final value, as a REPL does.
func (s *Session) Echo(name string, r io.Reader) (Value, error) {
	return s.run(name, r, true)
}

// DumpEnv writes the runtime bindings to w.
func (s *Session) DumpEnv(w io.Writer) {
	s.interp.runtime.Dump(w)
}

func typeOf(expr Expr) Type {
	switch e := expr.(type) {
	case *IntegerExpr:
		return TypeInt
	case *BoolExpr:
		return TypeBool
	case *VarExpr:
		return e.Type
	case *UnaryExpr:
		return e.Type
	case *BinaryExpr:
		return e.Type
	case *AssignExpr:
		return e.Type
	case *PrintExpr:
		return typeOf(e.Expr)
	}
	return TypeUnknown
}
