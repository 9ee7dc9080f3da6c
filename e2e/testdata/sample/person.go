// SPDX-License-Identifier: MIT
//
// Copyright 2026 Castlebridge Labs. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package sample

import (
	"context"

	"github.com/castlebridge/bindgen/binding"
)

// Person is the wrapped domain model.
type Person struct {
	First string
	Last  string
}

// PersonChanged is published when identity fields change.
type PersonChanged struct{}

// PersonStore persists people.
type PersonStore interface {
	Save(ctx context.Context, p Person) error
}

//bind:viewmodel constructor factory subscriber
type PersonViewModel struct {
	binding.Observable

	//bind:property
	//bind:notify FullName,SaveCommand
	//bind:publish PersonChanged
	firstName string

	//bind:property
	//bind:notify FullName
	//bind:call refreshTitle
	lastName string

	//bind:property readonly
	fullName string

	//bind:inject
	store PersonStore

	//bind:model
	person Person

	title string
}

func (v *PersonViewModel) refreshTitle() {
	v.title = v.fullName
}

//bind:command safe can=CanSave
func (v *PersonViewModel) Save(ctx context.Context) error {
	return v.store.Save(ctx, v.person)
}

func (v *PersonViewModel) CanSave() bool {
	return v.firstName != ""
}

//bind:command
func (v *PersonViewModel) Reset() {
	v.firstName = ""
	v.lastName = ""
}
