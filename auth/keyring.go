// Package auth persists the MyAnimeList client ID in the system keyring.
package auth

import (
	"errors"

	"github.com/brokiem/mpc-discordrpc/constant"
	"github.com/zalando/go-keyring"
)

const user = "mal-client-id"

// SetClientID stores the MyAnimeList client ID.
func SetClientID(id string) error {
	return keyring.Set(constant.App, user, id)
}

// ClientID returns the stored MyAnimeList client ID, or an empty string when none is stored.
func ClientID() (string, error) {
	id, err := keyring.Get(constant.App, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return id, err
}

// DeleteClientID removes the stored MyAnimeList client ID.
func DeleteClientID() error {
	err := keyring.Delete(constant.App, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
