// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

// Package http implements the development stand-in for the photo API: the
// full REST surface the client engine talks to (auth, albums, memories,
// profile, image uploads, health), backed by an in-memory store. It exists so
// the engine can be developed and exercised end to end without the real
// backend.
package http
