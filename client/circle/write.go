package circle

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cyphera/circle-w3s/circleerr"
	"github.com/cyphera/circle-w3s/idempotency"
)

// WriteAuth is embedded in every developer-controlled write body. Both
// values are generated at Build time and must not be reused.
type WriteAuth struct {
	IdempotencyKey         string `json:"idempotencyKey"`
	EntitySecretCiphertext string `json:"entitySecretCiphertext"`
}

var errNoSecrets = errors.New("client has no entity secret configured")

// newWriteAuth resolves the idempotency key (fresh unless overridden) and
// encrypts the entity secret once for this request.
func newWriteAuth(secrets CiphertextSource, idempotencyKey string) (WriteAuth, error) {
	if secrets == nil {
		return WriteAuth{}, &circleerr.ConfigError{Field: "entity secret", Err: errNoSecrets}
	}

	key, err := idempotency.Resolve(idempotencyKey)
	if err != nil {
		return WriteAuth{}, err
	}

	ciphertext, err := secrets.Ciphertext()
	if err != nil {
		return WriteAuth{}, err
	}

	return WriteAuth{IdempotencyKey: key, EntitySecretCiphertext: ciphertext}, nil
}

// pathID guards identifiers interpolated into request paths.
func pathID(name, id string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("%s is required", name)
	}
	if strings.ContainsAny(id, "/?#%") || id == "." || id == ".." {
		return "", fmt.Errorf("invalid %s %q", name, id)
	}
	return id, nil
}
