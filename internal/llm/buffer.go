package llm

import (
	"errors"
	"fmt"
)

// ErrBufferFull indica que el buffer rechazó un fragmento por superar su límite.
var ErrBufferFull = errors.New("response buffer limit reached")

// ResponseBuffer acumula el cuerpo de la respuesta a medida que llega.
// Len() siempre coincide con los bytes aceptados hasta el momento.
type ResponseBuffer struct {
	data     []byte
	maxBytes int
	chunks   int
}

// NewResponseBuffer crea un buffer; maxBytes <= 0 significa sin límite.
func NewResponseBuffer(maxBytes int) *ResponseBuffer {
	return &ResponseBuffer{maxBytes: maxBytes}
}

// Write agrega p completo o no agrega nada. Un conteo corto aborta la copia.
func (b *ResponseBuffer) Write(p []byte) (int, error) {
	if b.maxBytes > 0 && len(b.data)+len(p) > b.maxBytes {
		return 0, fmt.Errorf("%w: holding %d bytes, %d incoming, limit %d", ErrBufferFull, len(b.data), len(p), b.maxBytes)
	}
	if len(p) == 0 {
		return 0, nil
	}
	b.data = append(b.data, p...)
	b.chunks++
	return len(p), nil
}

func (b *ResponseBuffer) Len() int {
	return len(b.data)
}

// Chunks devuelve cuántos fragmentos no vacíos se aceptaron.
func (b *ResponseBuffer) Chunks() int {
	return b.chunks
}

func (b *ResponseBuffer) Bytes() []byte {
	return b.data
}

func (b *ResponseBuffer) String() string {
	return string(b.data)
}

// Reset libera la memoria acumulada.
func (b *ResponseBuffer) Reset() {
	b.data = nil
	b.chunks = 0
}
