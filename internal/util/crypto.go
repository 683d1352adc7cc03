package util

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"unicode"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"
)

// ErrWrongPassphrase is returned when sealed data cannot be opened.
var ErrWrongPassphrase = errors.New("incorrect passphrase")

// Sealed is a passphrase encrypted payload.
type Sealed struct {
	Salt  []byte
	Nonce []byte
	Data  []byte
}

const (
	saltSize  = 16
	nonceSize = 24
	keySize   = 32
)

func deriveKey(pass string, salt []byte) (*[keySize]byte, error) {
	raw, err := scrypt.Key([]byte(pass), salt, 1<<15, 8, 1, keySize)
	if err != nil {
		return nil, err
	}
	var key [keySize]byte
	copy(key[:], raw)
	return &key, nil
}

// Seal encrypts payload with a key derived from pass.
func Seal(payload []byte, pass string) (Sealed, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return Sealed{}, err
	}
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return Sealed{}, err
	}
	key, err := deriveKey(pass, salt)
	if err != nil {
		return Sealed{}, err
	}
	data := secretbox.Seal(nil, payload, &nonce, key)
	return Sealed{Salt: salt, Nonce: nonce[:], Data: data}, nil
}

// Open reverses Seal.
func Open(s Sealed, pass string) ([]byte, error) {
	if len(s.Nonce) != nonceSize {
		return nil, fmt.Errorf("invalid nonce length %d", len(s.Nonce))
	}
	var nonce [nonceSize]byte
	copy(nonce[:], s.Nonce)
	key, err := deriveKey(pass, s.Salt)
	if err != nil {
		return nil, err
	}
	out, ok := secretbox.Open(nil, s.Data, &nonce, key)
	if !ok {
		return nil, ErrWrongPassphrase
	}
	return out, nil
}

func ValidatePassphrase(pass string) error {
	if len(pass) < 8 {
		return fmt.Errorf("passphrase must be at least 8 characters")
	}
	var hasLetter, hasDigit bool
	for _, r := range pass {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("passphrase must contain a letter and a digit")
	}
	return nil
}
