// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package virtualmachine

import (
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
)

type keyValuePair struct {
	key     []byte
	value   []byte
	isDirty bool
}

type transientAccount struct {
	keySortOrder []string
	values       map[string]*keyValuePair
}

// account and key order are kept in insertion order so state diffs are deterministic
type transientState struct {
	accountSortOrder []primitives.AccountId
	accounts         map[primitives.AccountId]*transientAccount
}

func newTransientState() *transientState {
	return &transientState{
		accountSortOrder: []primitives.AccountId{},
		accounts:         make(map[primitives.AccountId]*transientAccount),
	}
}

func (t *transientState) getValue(accountId primitives.AccountId, key []byte) ([]byte, bool) {
	account, found := t.accounts[accountId]
	if !found {
		return nil, false
	}
	record, found := account.values[string(key)]
	if !found {
		return nil, false
	}
	return record.value, true
}

func (t *transientState) setValue(accountId primitives.AccountId, key []byte, value []byte, isDirty bool) {
	account, found := t.accounts[accountId]
	if !found {
		account = &transientAccount{
			keySortOrder: []string{},
			values:       make(map[string]*keyValuePair),
		}
		t.accounts[accountId] = account
		t.accountSortOrder = append(t.accountSortOrder, accountId)
	}
	record, found := account.values[string(key)]
	if !found {
		record = &keyValuePair{key: key}
		account.values[string(key)] = record
		account.keySortOrder = append(account.keySortOrder, string(key))
	}
	record.value = value
	record.isDirty = isDirty
}

func (t *transientState) forDirty(accountId primitives.AccountId, f func(key []byte, value []byte)) {
	account, found := t.accounts[accountId]
	if !found {
		return
	}
	for _, key := range account.keySortOrder {
		record := account.values[key]
		if record.isDirty {
			f(record.key, record.value)
		}
	}
}

func (t *transientState) mergeIntoTransientState(master *transientState) {
	for _, accountId := range t.accountSortOrder {
		t.forDirty(accountId, func(key []byte, value []byte) {
			master.setValue(accountId, key, value, true)
		})
	}
}
