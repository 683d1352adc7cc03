package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/pomo/internal/database"
	"github.com/akyairhashvil/pomo/internal/util"
)

// ErrPassphraseRequired is returned when reading an encrypted export without a passphrase.
var ErrPassphraseRequired = errors.New("export is encrypted, passphrase required")

type envelope struct {
	Encrypted bool   `json:"encrypted"`
	Salt      []byte `json:"salt"`
	Nonce     []byte `json:"nonce"`
	Data      []byte `json:"data"`
}

// WriteJSON writes export to path, sealed with passphrase when it is non-empty.
func WriteJSON(path string, export database.Export, passphrase string) error {
	payload, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return err
	}
	if passphrase != "" {
		sealed, err := util.Seal(payload, passphrase)
		if err != nil {
			return fmt.Errorf("encrypt export: %w", err)
		}
		payload, err = json.Marshal(envelope{Encrypted: true, Salt: sealed.Salt, Nonce: sealed.Nonce, Data: sealed.Data})
		if err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

// ReadJSON loads an export written by WriteJSON.
func ReadJSON(path, passphrase string) (database.Export, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return database.Export{}, err
	}
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return database.Export{}, fmt.Errorf("parse export: %w", err)
	}
	if env.Encrypted {
		if passphrase == "" {
			return database.Export{}, ErrPassphraseRequired
		}
		payload, err = util.Open(util.Sealed{Salt: env.Salt, Nonce: env.Nonce, Data: env.Data}, passphrase)
		if err != nil {
			return database.Export{}, err
		}
	}
	var export database.Export
	if err := json.Unmarshal(payload, &export); err != nil {
		return database.Export{}, fmt.Errorf("parse export: %w", err)
	}
	return export, nil
}

// IsEncrypted reports whether the export at path needs a passphrase.
func IsEncrypted(path string) (bool, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return false, fmt.Errorf("parse export: %w", err)
	}
	return env.Encrypted, nil
}
