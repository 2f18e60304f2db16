// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package primitives

import (
	"bytes"
	"encoding/hex"
	"strconv"
)

type AccountId string
type MethodName string
type BlockHeight uint64
type TimestampNano uint64
type ExecutionContextId uint64
type ProtocolVersion uint32

type Sha256 []byte
type Ripmd160Sha256 []byte
type Keccak256 []byte
type Ed25519PublicKey []byte
type Ed25519PrivateKey []byte
type Ed25519Sig []byte

func (x AccountId) String() string {
	return string(x)
}

func (x MethodName) String() string {
	return string(x)
}

func (x BlockHeight) String() string {
	return strconv.FormatUint(uint64(x), 10)
}

func (x TimestampNano) String() string {
	return strconv.FormatUint(uint64(x), 10)
}

func (x ExecutionContextId) String() string {
	return strconv.FormatUint(uint64(x), 10)
}

func (x Sha256) String() string {
	return hex.EncodeToString(x)
}

func (x Sha256) Equal(y Sha256) bool {
	return bytes.Equal(x, y)
}

func (x Sha256) KeyForMap() string {
	return string(x)
}

func (x Ripmd160Sha256) String() string {
	return hex.EncodeToString(x)
}

func (x Ripmd160Sha256) KeyForMap() string {
	return string(x)
}

func (x Keccak256) String() string {
	return hex.EncodeToString(x)
}

func (x Ed25519PublicKey) String() string {
	return hex.EncodeToString(x)
}

func (x Ed25519PublicKey) Equal(y Ed25519PublicKey) bool {
	return bytes.Equal(x, y)
}

func (x Ed25519Sig) String() string {
	return hex.EncodeToString(x)
}

func (x Ed25519Sig) MarshalText() ([]byte, error) {
	return marshalHex(x)
}

func (x *Ed25519Sig) UnmarshalText(text []byte) error {
	return unmarshalHex((*[]byte)(x), text)
}

func (x Ed25519PublicKey) MarshalText() ([]byte, error) {
	return marshalHex(x)
}

func (x *Ed25519PublicKey) UnmarshalText(text []byte) error {
	return unmarshalHex((*[]byte)(x), text)
}

func (x Sha256) MarshalText() ([]byte, error) {
	return marshalHex(x)
}

func (x *Sha256) UnmarshalText(text []byte) error {
	return unmarshalHex((*[]byte)(x), text)
}

func (x Ripmd160Sha256) MarshalText() ([]byte, error) {
	return marshalHex(x)
}

func (x *Ripmd160Sha256) UnmarshalText(text []byte) error {
	return unmarshalHex((*[]byte)(x), text)
}

func (x Keccak256) MarshalText() ([]byte, error) {
	return marshalHex(x)
}

func (x *Keccak256) UnmarshalText(text []byte) error {
	return unmarshalHex((*[]byte)(x), text)
}

func marshalHex(b []byte) ([]byte, error) {
	res := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(res, b)
	return res, nil
}

func unmarshalHex(dst *[]byte, text []byte) error {
	res := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(res, text); err != nil {
		return err
	}
	*dst = res
	return nil
}

func (x Ed25519PrivateKey) MarshalText() ([]byte, error) {
	return marshalHex(x)
}

func (x *Ed25519PrivateKey) UnmarshalText(text []byte) error {
	return unmarshalHex((*[]byte)(x), text)
}
