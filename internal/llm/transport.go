package llm

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net/http"
)

// ErrTransportClosed se devuelve al usar un Transport ya liberado.
var ErrTransportClosed = errors.New("transport closed")

// systemCertPool se reemplaza en tests.
var systemCertPool = x509.SystemCertPool

// Doer es lo mínimo que el Executor necesita del transporte.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Transport es el handle explícito del estado de red del proceso: se crea una
// vez al arrancar y se libera una vez al salir.
type Transport struct {
	base   *http.Transport
	client *http.Client
	closed bool
}

// NewTransport carga las raíces del sistema y arma el cliente HTTP. Sin timeout:
// la petición bloquea hasta que el transporte termina o falla.
func NewTransport() (*Transport, error) {
	pool, err := systemCertPool()
	if err != nil {
		return nil, &Error{Kind: KindGlobalInit, Op: "load root certificates", Err: err}
	}

	base := http.DefaultTransport.(*http.Transport).Clone()
	base.TLSClientConfig = &tls.Config{
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}
	return &Transport{
		base:   base,
		client: &http.Client{Transport: base},
	}, nil
}

func (t *Transport) Do(req *http.Request) (*http.Response, error) {
	if t.closed {
		return nil, ErrTransportClosed
	}
	return t.client.Do(req)
}

// Close libera las conexiones ociosas. Llamarlo más de una vez no hace nada.
func (t *Transport) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	t.base.CloseIdleConnections()
	return nil
}
