package credential

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"openai-chat/internal/domain"
)

// ErrMissingCredential se devuelve cuando ni el archivo ni el entorno tienen key.
var ErrMissingCredential = errors.New("no api key found")

// maxKeyLineBytes acota la lectura de la primera línea del archivo.
const maxKeyLineBytes = 511

// Resolver busca la API key primero en un archivo local y luego en el entorno.
type Resolver struct {
	FilePath  string
	EnvVar    string
	LookupEnv func(string) (string, bool)
	Logger    *zap.Logger
}

// NewResolver construye un Resolver sobre el entorno real del proceso.
func NewResolver(filePath, envVar string, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		FilePath:  filePath,
		EnvVar:    envVar,
		LookupEnv: os.LookupEnv,
		Logger:    logger,
	}
}

// Resolve devuelve una credencial no vacía o ErrMissingCredential.
func (r *Resolver) Resolve() (domain.Credential, error) {
	logger := r.logger()

	token, err := readFirstLine(r.FilePath)
	switch {
	case err != nil:
		logger.Debug("api key file unavailable", zap.String("path", r.FilePath), zap.Error(err))
	case strings.TrimSpace(token) == "":
		logger.Debug("api key file is empty", zap.String("path", r.FilePath))
	default:
		return domain.Credential{Token: token, Source: domain.CredentialSourceFile, Origin: r.FilePath}, nil
	}

	lookup := r.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if value, ok := lookup(r.EnvVar); ok && value != "" {
		return domain.Credential{Token: value, Source: domain.CredentialSourceEnv, Origin: r.EnvVar}, nil
	}
	logger.Debug("api key env var not set", zap.String("env", r.EnvVar))

	return domain.Credential{}, fmt.Errorf("resolve credential from %s or %s: %w", r.FilePath, r.EnvVar, ErrMissingCredential)
}

func (r *Resolver) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// readFirstLine lee la primera línea y quita un "\n" y luego un "\r" finales.
func readFirstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	reader := bufio.NewReader(io.LimitReader(f, maxKeyLineBytes))
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
