package llm

import (
	"context"
	"crypto/x509"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewTransportInitFailure(t *testing.T) {
	orig := systemCertPool
	t.Cleanup(func() { systemCertPool = orig })
	systemCertPool = func() (*x509.CertPool, error) {
		return nil, errors.New("no roots")
	}

	_, err := NewTransport()
	var llmErr *Error
	if !errors.As(err, &llmErr) || llmErr.Kind != KindGlobalInit {
		t.Fatalf("expected global init error, got %v", err)
	}
}

func TestTransportDoAndClose(t *testing.T) {
	orig := systemCertPool
	t.Cleanup(func() { systemCertPool = orig })
	systemCertPool = func() (*x509.CertPool, error) {
		return x509.NewCertPool(), nil
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	tr, err := NewTransport()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	buf := NewResponseBuffer(0)
	if err := NewExecutor(tr, srv.URL, nil).Execute(context.Background(), testCred, buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "ok" {
		t.Fatalf("unexpected body %q", buf.String())
	}

	if err := tr.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := tr.Close(); err != nil {
		t.Fatalf("second close must be a no-op: %v", err)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	if _, err := tr.Do(req); !errors.Is(err, ErrTransportClosed) {
		t.Fatalf("expected ErrTransportClosed, got %v", err)
	}
}
