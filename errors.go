package exprlang

import (
	"fmt"
)

type ErrorKind int

const (
	ScannerError ErrorKind = iota
	ParserError
	CheckerError
	InterpreterError
)

func (k ErrorKind) String() string {
	switch k {
	case ScannerError:
		return "Scanner Error"
	case ParserError:
		return "Parser Error"
	case CheckerError:
		return "Checker Error"
	case InterpreterError:
		return "Interpreter Error"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the single diagnostic produced by a failed stage. Loc is nil when
// no source position is known.
type Error struct {
	Kind ErrorKind
	Msg  string
	Loc  *Location
}

func (e *Error) Error() string {
	if e.Loc != nil {
		return fmt.Sprintf("%v - %v: %s", *e.Loc, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
}

func newError(kind ErrorKind, loc *Location, format string, args ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
		Loc:  loc,
	}
}

func locOf(loc Location) *Location {
	return &loc
}
