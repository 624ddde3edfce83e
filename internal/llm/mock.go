package llm

import (
	"io"
	"net/http"
)

// MockDoer permite tests sin red: entrega Chunks como cuerpo, uno por Read,
// o devuelve Err sin respuesta.
type MockDoer struct {
	Status  int
	Chunks  []string
	BodyErr error
	Err     error

	Calls       int
	LastRequest *http.Request
	LastBody    string
}

func (m *MockDoer) Do(req *http.Request) (*http.Response, error) {
	m.Calls++
	m.LastRequest = req
	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		m.LastBody = string(body)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	status := m.Status
	if status == 0 {
		status = http.StatusOK
	}
	chunks := append([]string(nil), m.Chunks...)
	return &http.Response{
		StatusCode: status,
		Header:     make(http.Header),
		Body:       io.NopCloser(&chunkReader{chunks: chunks, err: m.BodyErr}),
		Request:    req,
	}, nil
}

type chunkReader struct {
	chunks []string
	err    error
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	if n < len(r.chunks[0]) {
		r.chunks[0] = r.chunks[0][n:]
	} else {
		r.chunks = r.chunks[1:]
	}
	return n, nil
}
