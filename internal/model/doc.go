// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model holds the statically parsed source model the context
// resolution engine reads from: suite files with their settings tables,
// test cases, user keywords and the raw rows of their bodies.
//
// The model is produced elsewhere (see the hcl_adapter package for the
// scenario format used by this repository) and is treated as read-only once
// built. Nothing in this package knows about running executors or contexts.
package model
