package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultSecretsPath = "/var/run/secrets/idm"
	pinFile            = "pin"
)

// tryLoadFromSecrets attempts to read the PIN from a mounted Kubernetes secret file.
// Returns an empty string if the secret is not mounted (not an error - allows fallback to env vars).
func tryLoadFromSecrets() (string, error) {
	secretsPath := os.Getenv("IDM_SECRETS_PATH")
	if secretsPath == "" {
		secretsPath = defaultSecretsPath
	}

	data, err := os.ReadFile(filepath.Join(secretsPath, pinFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
