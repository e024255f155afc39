package auth

import (
	"chatterbox/errors"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id cost, OWASP baseline for interactive logins.
const (
	Memory      = 64 * 1024 // KiB
	Iterations  = 3
	Parallelism = 2
	SaltLength  = 16
	KeyLength   = 32
)

// argonParams is what a stored hash says about how it was derived.
type argonParams struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	salt        []byte
	key         []byte
}

// HashPassword derives an Argon2id key with a fresh salt and encodes it in the PHC string format.
func HashPassword(password string) (string, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := argon2.IDKey([]byte(password), salt, Iterations, Memory, Parallelism, KeyLength)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, Memory, Iterations, Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// ComparePassword reports whether password derives the key stored in encodedHash.
// A malformed hash is an ErrInvalidHash error, never a panic.
func ComparePassword(password, encodedHash string) (bool, error) {
	params, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}
	candidate := argon2.IDKey([]byte(password), params.salt,
		params.iterations, params.memory, params.parallelism, uint32(len(params.key)))
	return subtle.ConstantTimeCompare(params.key, candidate) == 1, nil
}

func decodeHash(encodedHash string) (argonParams, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return argonParams{}, fmt.Errorf("%w: unexpected layout", errors.ErrInvalidHash)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return argonParams{}, fmt.Errorf("%w: version: %v", errors.ErrInvalidHash, err)
	}
	if version != argon2.Version {
		return argonParams{}, fmt.Errorf("%w: unsupported version %d", errors.ErrInvalidHash, version)
	}

	var memory, iterations uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return argonParams{}, fmt.Errorf("%w: parameters: %v", errors.ErrInvalidHash, err)
	}
	if memory == 0 || iterations == 0 || parallelism < 1 {
		return argonParams{}, fmt.Errorf("%w: m=%d t=%d p=%d", errors.ErrInvalidHash, memory, iterations, parallelism)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return argonParams{}, fmt.Errorf("%w: salt: %v", errors.ErrInvalidHash, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return argonParams{}, fmt.Errorf("%w: key", errors.ErrInvalidHash)
	}
	return argonParams{memory: memory, iterations: iterations, parallelism: parallelism, salt: salt, key: key}, nil
}
