package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const (
	AlgorithmPlain  = "plain"
	AlgorithmArgon2 = "argon2id"
	AlgorithmBcrypt = "bcrypt"

	// Параметры Argon2id. PIN короткий, поэтому упор на память.
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4
	argon2KeyLen  = 32
	saltLength    = 16
)

var ErrInvalidHash = errors.New("invalid hash format")

// NewHasher возвращает кодировщик PIN по имени алгоритма
func NewHasher(algorithm string) (*Hasher, error) {
	switch algorithm {
	case AlgorithmPlain, AlgorithmArgon2, AlgorithmBcrypt:
		return &Hasher{algorithm: algorithm}, nil
	case "":
		return &Hasher{algorithm: AlgorithmArgon2}, nil
	}
	return nil, fmt.Errorf("unsupported pin hash algorithm: %s", algorithm)
}

// Hasher кодирует PIN перед записью в хранилище
type Hasher struct {
	algorithm string
}

func (h *Hasher) Algorithm() string {
	return h.algorithm
}

func (h *Hasher) Hash(pin string) (string, error) {
	switch h.algorithm {
	case AlgorithmArgon2:
		return hashArgon2([]byte(pin))
	case AlgorithmBcrypt:
		hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
		if err != nil {
			return "", fmt.Errorf("bcrypt: %w", err)
		}
		return string(hash), nil
	}
	return pin, nil
}

// Verify сверяет PIN с сохраненным значением. Значение без префикса "$"
// считается старой записью в открытом виде.
func (h *Hasher) Verify(pin, stored string) (bool, error) {
	switch {
	case strings.HasPrefix(stored, "$argon2id$"):
		return verifyArgon2([]byte(pin), stored)
	case strings.HasPrefix(stored, "$2"):
		err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(pin))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("bcrypt: %w", err)
		}
		return true, nil
	case strings.HasPrefix(stored, "$"):
		return false, ErrInvalidHash
	}
	return subtle.ConstantTimeCompare([]byte(pin), []byte(stored)) == 1, nil
}

// GenerateRandomBytes генерирует криптографически безопасные случайные байты
func GenerateRandomBytes(size int) ([]byte, error) {
	bytes := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, bytes); err != nil {
		return nil, fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return bytes, nil
}

// ClearMemory затирает чувствительные данные из памяти
func ClearMemory(data []byte) {
	for i := range data {
		data[i] = 0
	}
}

func hashArgon2(pin []byte) (string, error) {
	salt, err := GenerateRandomBytes(saltLength)
	if err != nil {
		return "", err
	}

	key := argon2.IDKey(pin, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	defer ClearMemory(key)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argon2Memory, argon2Time, argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func verifyArgon2(pin []byte, encoded string) (bool, error) {
	// "", "argon2id", "v=19", "m=..,t=..,p=..", salt, hash
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return false, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	if version != argon2.Version {
		return false, fmt.Errorf("%w: unsupported argon2 version %d", ErrInvalidHash, version)
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: salt: %v", ErrInvalidHash, err)
	}
	storedKey, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("%w: key: %v", ErrInvalidHash, err)
	}

	key := argon2.IDKey(pin, salt, time, memory, threads, uint32(len(storedKey)))
	defer ClearMemory(key)

	return subtle.ConstantTimeCompare(key, storedKey) == 1, nil
}
