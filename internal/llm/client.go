package llm

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"openai-chat/internal/domain"
)

const (
	// ChatMessage es el contenido fijo del mensaje de usuario.
	ChatMessage = "hello"

	// ChatPayload es el cuerpo literal que se envía en cada ejecución.
	ChatPayload = `{"model": "gpt-3.5-turbo","messages": [{"role": "user","content": "` + ChatMessage + `"}],"max_tokens": 100}`
)

// Executor realiza una única petición de chat completions.
type Executor struct {
	doer     Doer
	endpoint string
	logger   *zap.Logger
}

func NewExecutor(doer Doer, endpoint string, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{
		doer:     doer,
		endpoint: endpoint,
		logger:   logger,
	}
}

// Execute envía ChatPayload y vuelca el cuerpo de la respuesta en buf.
// El status HTTP no se evalúa: un 4xx/5xx completo también es éxito de transporte.
func (e *Executor) Execute(ctx context.Context, cred domain.Credential, buf *ResponseBuffer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, strings.NewReader(ChatPayload))
	if err != nil {
		return &Error{Kind: KindTransport, Op: "create request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cred.Token)

	e.logger.Debug("sending chat completion",
		zap.String("endpoint", e.endpoint),
		zap.String("credential_source", string(cred.Source)),
	)

	resp, err := e.doer.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Op: "do request", Err: err}
	}
	defer resp.Body.Close()

	n, err := io.Copy(buf, resp.Body)
	if err != nil {
		if errors.Is(err, ErrBufferFull) {
			return &Error{Kind: KindAllocation, Op: "buffer response", Err: err}
		}
		return &Error{Kind: KindTransport, Op: "read response", Err: err}
	}

	e.logger.Info("chat completion received",
		zap.Int("status", resp.StatusCode),
		zap.Int64("bytes", n),
		zap.Int("chunks", buf.Chunks()),
	)
	return nil
}
