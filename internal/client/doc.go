// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Lukashev

// Package client bootstraps the offline-first engine for an embedding host.
//
// It wires local storage, the HTTP gateways, the connectivity monitor and
// every service into a single runtime, and supervises the background loops
// (connectivity probing, queue draining, list event splicing) for the
// lifetime of the host process.
package client
