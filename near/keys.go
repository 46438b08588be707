package near

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/cyphera/circle-w3s/circleerr"
)

// KeyType is the borsh discriminant of a NEAR public key.
type KeyType uint8

const (
	KeyTypeED25519   KeyType = 0
	KeyTypeSECP256K1 KeyType = 1
)

// DefaultKeyType is assumed for keys that arrive without an algorithm prefix.
const DefaultKeyType = KeyTypeED25519

var keyTypeNames = map[KeyType]string{
	KeyTypeED25519:   "ed25519",
	KeyTypeSECP256K1: "secp256k1",
}

var keyTypeLengths = map[KeyType]int{
	KeyTypeED25519:   32,
	KeyTypeSECP256K1: 64,
}

func (k KeyType) String() string {
	if name, ok := keyTypeNames[k]; ok {
		return name
	}
	return fmt.Sprintf("keytype(%d)", uint8(k))
}

// PublicKey is a NEAR signing key: an algorithm tag and the raw key bytes.
type PublicKey struct {
	Type KeyType
	Data []byte
}

// String renders the key as "<algorithm>:<base58>".
func (k PublicKey) String() string {
	return k.Type.String() + ":" + base58.Encode(k.Data)
}

func (k PublicKey) validate() error {
	want, ok := keyTypeLengths[k.Type]
	if !ok {
		return fmt.Errorf("unsupported key type %d", uint8(k.Type))
	}
	if len(k.Data) != want {
		return fmt.Errorf("%s key must be %d bytes, got %d", k.Type, want, len(k.Data))
	}
	return nil
}

var errNoPrefix = errors.New("no algorithm prefix")

type keyFormat struct {
	name  string
	parse func(string) (PublicKey, error)
}

// publicKeyFormats are tried in order. The prefixed form always comes first
// so an explicitly tagged key is never reinterpreted as the default type.
var publicKeyFormats = []keyFormat{
	{name: "prefixed", parse: parsePrefixedKey},
	{name: "bare", parse: parseBareKey},
}

func parsePrefixedKey(s string) (PublicKey, error) {
	prefix, encoded, found := strings.Cut(s, ":")
	if !found {
		return PublicKey{}, errNoPrefix
	}

	keyType, ok := keyTypeFromName(strings.ToLower(prefix))
	if !ok {
		return PublicKey{}, fmt.Errorf("unknown key algorithm %q", prefix)
	}
	return decodeKey(keyType, encoded)
}

func parseBareKey(s string) (PublicKey, error) {
	return decodeKey(DefaultKeyType, s)
}

func keyTypeFromName(name string) (KeyType, bool) {
	for t, n := range keyTypeNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

func decodeKey(keyType KeyType, encoded string) (PublicKey, error) {
	data, err := base58.Decode(encoded)
	if err != nil {
		return PublicKey{}, err
	}
	key := PublicKey{Type: keyType, Data: data}
	if err := key.validate(); err != nil {
		return PublicKey{}, err
	}
	return key, nil
}

// ParsePublicKey accepts "ed25519:<base58>", "secp256k1:<base58>" or a bare
// base58 string, which is taken to be an ed25519 key. A string that carries
// a prefix is never retried as a bare key.
func ParsePublicKey(s string) (PublicKey, error) {
	attempts := make([]circleerr.ParseAttempt, 0, len(publicKeyFormats))
	for _, f := range publicKeyFormats {
		key, err := f.parse(s)
		if err == nil {
			return key, nil
		}
		attempts = append(attempts, circleerr.ParseAttempt{Scheme: f.name, Err: err})
		if !errors.Is(err, errNoPrefix) && f.name == "prefixed" {
			break
		}
	}
	return PublicKey{}, &circleerr.KeyParseError{Attempts: attempts}
}
