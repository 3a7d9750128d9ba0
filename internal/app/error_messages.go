// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

// Package app contains shared application-layer constants and the mapping
// from engine errors to the human-readable messages the mobile hosts show.
// Keeping them in one place ensures consistent wording on every screen.
package app

import (
	"errors"

	"github.com/mlukashe/go-photo-keeper/internal/adapter"
	"github.com/mlukashe/go-photo-keeper/internal/service"
)

const (
	// MsgInvalidDataProvided is shown when a form payload fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is shown when the supplied login/password
	// combination is rejected by the server.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgOffline is shown when an operation needs connectivity right now,
	// such as paging past the locally cached depth.
	MsgOffline = "you are offline"

	// MsgNothingCached is shown when a list or profile screen is opened
	// offline before any data was ever fetched.
	MsgNothingCached = "nothing to show yet — connect to load your data"

	// MsgSavedLocally is shown when a write completed on the device and was
	// queued for upload.
	MsgSavedLocally = "saved on this device, will upload when online"

	// MsgStorageFull is shown when the local image store rejects a write.
	MsgStorageFull = "could not save the photo on this device"

	// MsgSomethingWentWrong is the fallback for unexpected failures.
	MsgSomethingWentWrong = "something went wrong, please try again"
)

// MessageFor translates an engine error into a message suitable for display.
// It never exposes transport or SQL details to the user.
func MessageFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrValidation):
		return MsgInvalidDataProvided
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return MsgInvalidLoginPassword
	case errors.Is(err, service.ErrOffline):
		return MsgOffline
	case errors.Is(err, service.ErrNoCachedData):
		return MsgNothingCached
	case errors.Is(err, service.ErrImageStorage):
		return MsgStorageFull
	default:
		return MsgSomethingWentWrong
	}
}
