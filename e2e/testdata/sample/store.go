// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package sample

import "context"

//bind:service provides=PersonStore
type SQLPersonStore struct{}

// NewSQLPersonStore returns the SQL-backed store.
func NewSQLPersonStore() *SQLPersonStore {
	return &SQLPersonStore{}
}

// Save implements PersonStore.
func (s *SQLPersonStore) Save(ctx context.Context, p Person) error {
	return nil
}
