// SPDX-License-Identifier: MIT

// Package invariants gates expensive self-checks behind build tags.
//
// Code guards its checks with `if invariants.Enabled { ... }`; the constant
// folds away in normal builds. Build or test with `-tags invariants` (or
// `-race`) to turn them on.
package invariants
