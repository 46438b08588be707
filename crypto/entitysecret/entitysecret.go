// Package entitysecret turns the long-lived entity secret into the
// single-use ciphertext every developer-controlled write must carry.
//
// The ciphertext is RSA-OAEP (SHA-256 for both the label hash and MGF1) over
// the raw secret bytes, base64 encoded. OAEP is randomized, so two calls with
// the same inputs never produce the same ciphertext.
package entitysecret

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/cyphera/circle-w3s/circleerr"
)

var errNoPEMBlock = errors.New("no PEM block found")

// keyParser is one public key encoding we know how to read.
type keyParser struct {
	scheme string
	parse  func(der []byte) (*rsa.PublicKey, error)
}

// publicKeyParsers are tried in order. The legacy PKCS#1 form comes first
// because that is what older consoles handed out.
var publicKeyParsers = []keyParser{
	{scheme: "pkcs1", parse: x509.ParsePKCS1PublicKey},
	{scheme: "pkix", parse: parsePKIXRSA},
}

func parsePKIXRSA(der []byte) (*rsa.PublicKey, error) {
	pub, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, err
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA public key (%T)", pub)
	}
	return rsaPub, nil
}

// ParsePublicKey reads an RSA public key from PEM text. The PEM block type is
// ignored: the platform has served PKIX bodies under an "RSA PUBLIC KEY"
// header. When no strategy succeeds every failure is reported.
func ParsePublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))

	attempts := make([]circleerr.ParseAttempt, 0, len(publicKeyParsers))
	for _, p := range publicKeyParsers {
		if block == nil {
			attempts = append(attempts, circleerr.ParseAttempt{Scheme: p.scheme, Err: errNoPEMBlock})
			continue
		}
		key, err := p.parse(block.Bytes)
		if err == nil {
			return key, nil
		}
		attempts = append(attempts, circleerr.ParseAttempt{Scheme: p.scheme, Err: err})
	}

	return nil, &circleerr.KeyParseError{Attempts: attempts}
}

// DecodeSecret decodes the hex form of the entity secret.
func DecodeSecret(secretHex string) ([]byte, error) {
	secret, err := hex.DecodeString(secretHex)
	if err != nil {
		return nil, &circleerr.DecodeError{What: "entity secret hex", Err: err}
	}
	return secret, nil
}

// Encrypt is the one-shot form of Encryptor.Ciphertext.
func Encrypt(secretHex, publicKeyPEM string) (string, error) {
	enc, err := NewEncryptor(secretHex, publicKeyPEM)
	if err != nil {
		return "", err
	}
	return enc.Ciphertext()
}

// Encryptor holds a decoded entity secret and the platform public key and
// produces a fresh ciphertext on every call. It is safe for concurrent use.
type Encryptor struct {
	secret    []byte
	publicKey *rsa.PublicKey
}

// NewEncryptor validates both inputs once so each Ciphertext call only pays
// for the RSA operation.
func NewEncryptor(secretHex, publicKeyPEM string) (*Encryptor, error) {
	secret, err := DecodeSecret(secretHex)
	if err != nil {
		return nil, err
	}

	key, err := ParsePublicKey(publicKeyPEM)
	if err != nil {
		return nil, err
	}

	return &Encryptor{secret: secret, publicKey: key}, nil
}

// Ciphertext encrypts the secret with fresh OAEP randomness from crypto/rand.
// The result must be embedded in exactly one request.
func (e *Encryptor) Ciphertext() (string, error) {
	ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, e.publicKey, e.secret, nil)
	if err != nil {
		return "", &circleerr.EncryptionError{Err: err}
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// KeySize returns the modulus size in bytes.
func (e *Encryptor) KeySize() int {
	return e.publicKey.Size()
}

// String keeps the secret out of logs and %v output.
func (e *Encryptor) String() string {
	return fmt.Sprintf("entitysecret.Encryptor{secret: [REDACTED], keyBits: %d}", e.publicKey.N.BitLen())
}

// GoString covers %#v.
func (e *Encryptor) GoString() string {
	return e.String()
}
