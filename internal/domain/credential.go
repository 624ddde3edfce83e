package domain

// CredentialSource indica de dónde salió la API key.
type CredentialSource string

const (
	CredentialSourceFile CredentialSource = "file"
	CredentialSourceEnv  CredentialSource = "env"
)

// Credential es el bearer token resuelto para una ejecución. Nunca se persiste.
type Credential struct {
	Token  string           `json:"-"`
	Source CredentialSource `json:"source"`
	Origin string           `json:"origin"` // ruta del archivo o nombre de la variable
}

// Describe devuelve el origen en formato legible para la consola.
func (c Credential) Describe() string {
	if c.Source == CredentialSourceEnv {
		return "environment variable"
	}
	return c.Origin
}
