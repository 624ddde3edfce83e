package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"openai-chat/internal/config"
	"openai-chat/internal/credential"
	"openai-chat/internal/llm"
)

type transport interface {
	llm.Doer
	Close() error
}

// newTransport se reemplaza en tests para no tocar la red.
var newTransport = func() (transport, error) {
	t, err := llm.NewTransport()
	if err != nil {
		return nil, err
	}
	return t, nil
}

// run ejecuta la secuencia completa y devuelve el código de salida.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, stdout, stderr io.Writer) int {
	tr, err := newTransport()
	if err != nil {
		logger.Debug("transport init failed", zap.Error(err))
		fmt.Fprintf(stderr, "transport init failed: %v\n", err)
		return 1
	}
	defer tr.Close()

	resolver := credential.NewResolver(cfg.KeyFile, config.KeyEnvVar, logger)
	cred, err := resolver.Resolve()
	if err != nil {
		logger.Debug("credential resolution failed", zap.Error(err))
		printMissingCredential(stderr, cfg.KeyFile)
		return 1
	}
	fmt.Fprintf(stdout, "✓ API key loaded from %s\n", cred.Describe())

	buf := llm.NewResponseBuffer(cfg.MaxResponseBytes)
	defer buf.Reset()

	fmt.Fprintf(stdout, "Sending request to OpenAI API with message: %q\n", llm.ChatMessage)
	fmt.Fprintf(stdout, "Request payload: %s\n\n", llm.ChatPayload)

	executor := llm.NewExecutor(tr, cfg.ChatURL, logger)
	if err := executor.Execute(ctx, cred, buf); err != nil {
		logger.Debug("chat completion failed", zap.Error(err))
		fmt.Fprintf(stderr, "request failed: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, "Response from OpenAI API:")
	if buf.Len() == 0 {
		fmt.Fprintln(stdout, "No response data")
	} else {
		fmt.Fprintln(stdout, buf.String())
	}
	return 0
}

func printMissingCredential(w io.Writer, keyFile string) {
	fmt.Fprintln(w, "Error: No API key found!")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintf(w, "1. Create %s file with your API key\n", keyFile)
	fmt.Fprintf(w, "2. Set %s environment variable\n", config.KeyEnvVar)
}
