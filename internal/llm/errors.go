package llm

import "fmt"

type ErrorKind string

const (
	KindGlobalInit ErrorKind = "GLOBAL_INIT"
	KindAllocation ErrorKind = "ALLOCATION"
	KindTransport  ErrorKind = "TRANSPORT"
)

// Error describe una falla terminal del transporte o del buffer de respuesta.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error in %s: %v", e.Kind, e.Op, e.Err)
	}
	return fmt.Sprintf("%s error in %s", e.Kind, e.Op)
}

func (e *Error) Unwrap() error {
	return e.Err
}
