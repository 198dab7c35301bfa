// Package secret keeps source and ephemeris passwords in the OS keyring.
package secret

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/zalando/go-keyring"

	"github.com/tartampluch/go-jyotish/internal/config"
)

// Store reads and writes passwords under config.KeyringService. Entries are
// keyed by target and user so one account can hold both passwords.
type Store struct {
	Service string
}

// NewStore returns a store bound to the application keyring service.
func NewStore() *Store {
	return &Store{Service: config.KeyringService}
}

func account(target, user string) (string, error) {
	switch target {
	case config.TargetSource, config.TargetEphemeris:
	default:
		return "", fmt.Errorf("%s: %q", config.ErrTarget, target)
	}
	if user == "" {
		return "", errors.New(config.ErrUserRequired)
	}
	return target + config.AddrSeparator + user, nil
}

// Set stores the password for user on target.
func (s *Store) Set(target, user, password string) error {
	key, err := account(target, user)
	if err != nil {
		return err
	}
	if err := keyring.Set(s.Service, key, password); err != nil {
		return fmt.Errorf("%s: %w", config.ErrKeyring, err)
	}
	slog.Info(config.MsgCredSaved,
		config.LogKeyComponent, config.CompSecret,
		config.LogKeyTarget, target,
		config.LogKeyUser, user,
	)
	return nil
}

// Lookup returns the stored password, or "" when there is none. An empty
// user never has a password.
func (s *Store) Lookup(target, user string) string {
	if user == "" {
		return ""
	}
	key, err := account(target, user)
	if err != nil {
		return ""
	}
	p, err := keyring.Get(s.Service, key)
	if err != nil {
		slog.Debug(config.MsgPassFail,
			config.LogKeyComponent, config.CompSecret,
			config.LogKeyTarget, target,
			config.LogKeyUser, user,
			config.LogKeyError, err,
		)
		return ""
	}
	return p
}

// Delete removes the stored password. Deleting a missing entry is not an
// error.
func (s *Store) Delete(target, user string) error {
	key, err := account(target, user)
	if err != nil {
		return err
	}
	if err := keyring.Delete(s.Service, key); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("%s: %w", config.ErrKeyring, err)
	}
	return nil
}
