// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package gammacli

import (
	"encoding/json"
	"github.com/orbs-network/orbs-counter-playground/crypto/digest"
	"github.com/orbs-network/orbs-counter-playground/crypto/keys"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/pkg/errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

const DEFAULT_KEYS_DIR = ".gamma-keys"

type KeyFile struct {
	AccountId  primitives.AccountId         `json:"accountId"`
	PublicKey  primitives.Ed25519PublicKey  `json:"publicKey"`
	PrivateKey primitives.Ed25519PrivateKey `json:"privateKey"`
	Address    primitives.Keccak256         `json:"address"`
}

func (k *KeyFile) KeyPair() *keys.Ed25519KeyPair {
	return keys.NewEd25519KeyPair(k.PublicKey, k.PrivateKey)
}

func keyFilePath(keysDir string, accountId primitives.AccountId) (string, error) {
	name := string(accountId)
	if strings.TrimSpace(name) == "" {
		return "", errors.New("account id is empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", errors.Errorf("account id %q is not a valid file name", name)
	}
	return filepath.Join(keysDir, name+".json"), nil
}

// Login creates a fresh key pair for the account, replacing any previous one
func Login(keysDir string, accountId primitives.AccountId) (*KeyFile, string, error) {
	path, err := keyFilePath(keysDir, accountId)
	if err != nil {
		return nil, "", err
	}

	keyPair, err := keys.GenerateEd25519Key()
	if err != nil {
		return nil, "", err
	}
	address, err := digest.CalcSignerAddressOfEd25519PublicKey(keyPair.PublicKey())
	if err != nil {
		return nil, "", err
	}
	keyFile := &KeyFile{
		AccountId:  accountId,
		PublicKey:  keyPair.PublicKey(),
		PrivateKey: keyPair.PrivateKey(),
		Address:    address,
	}

	bytes, err := json.MarshalIndent(keyFile, "", "  ")
	if err != nil {
		return nil, "", errors.Wrap(err, "failed encoding key file")
	}
	if err := os.MkdirAll(keysDir, 0700); err != nil {
		return nil, "", errors.Wrapf(err, "failed creating keys dir %s", keysDir)
	}
	if err := ioutil.WriteFile(path, bytes, 0600); err != nil {
		return nil, "", errors.Wrapf(err, "failed writing key file %s", path)
	}
	return keyFile, path, nil
}

func LoadKeyFile(keysDir string, accountId primitives.AccountId) (*KeyFile, error) {
	path, err := keyFilePath(keysDir, accountId)
	if err != nil {
		return nil, err
	}

	bytes, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Errorf("account %s is not logged in, run login --accountId %s first", accountId, accountId)
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed reading key file %s", path)
	}

	keyFile := &KeyFile{}
	if err := json.Unmarshal(bytes, keyFile); err != nil {
		return nil, errors.Wrapf(err, "key file %s is corrupt", path)
	}
	if keyFile.AccountId != accountId {
		return nil, errors.Errorf("key file %s belongs to account %s", path, keyFile.AccountId)
	}
	if len(keyFile.PublicKey) != keys.ED25519_PUBLIC_KEY_SIZE_BYTES || len(keyFile.PrivateKey) != keys.ED25519_PRIVATE_KEY_SIZE_BYTES {
		return nil, errors.Errorf("key file %s holds keys of the wrong size", path)
	}
	return keyFile, nil
}
