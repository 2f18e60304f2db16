// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package native

import (
	"github.com/orbs-network/membuffers/go"
	"github.com/orbs-network/orbs-counter-playground/crypto/hash"
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/types"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
)

const SDK_OPERATION_NAME_STATE = "Sdk.State"

const uint64Size = 8

// stateSdk hashes every key to a ripemd160(sha256) address before it reaches the virtual machine
type stateSdk struct {
	sdkCaller
}

func keyToAddress(key string) primitives.Ripmd160Sha256 {
	return hash.CalcRipemd160Sha256([]byte(key))
}

func (s *stateSdk) read(ctx types.Context, key string) ([]byte, error) {
	output, err := s.callForSingle(ctx, SDK_OPERATION_NAME_STATE, "read", protocol.ARGUMENT_TYPE_BYTES_VALUE,
		&protocol.Argument{Name: "key", Type: protocol.ARGUMENT_TYPE_BYTES_VALUE, BytesValue: keyToAddress(key)},
	)
	if err != nil {
		return nil, err
	}
	return output.BytesValue, nil
}

// write with an empty value removes the key from state
func (s *stateSdk) write(ctx types.Context, key string, value []byte) error {
	_, err := s.call(ctx, SDK_OPERATION_NAME_STATE, "write",
		&protocol.Argument{Name: "key", Type: protocol.ARGUMENT_TYPE_BYTES_VALUE, BytesValue: keyToAddress(key)},
		&protocol.Argument{Name: "value", Type: protocol.ARGUMENT_TYPE_BYTES_VALUE, BytesValue: value},
	)
	return err
}

func (s *stateSdk) ReadBytesByKey(ctx types.Context, key string) ([]byte, error) {
	return s.read(ctx, key)
}

func (s *stateSdk) WriteBytesByKey(ctx types.Context, key string, value []byte) error {
	return s.write(ctx, key, value)
}

func (s *stateSdk) ReadStringByKey(ctx types.Context, key string) (string, error) {
	value, err := s.read(ctx, key)
	return string(value), err
}

func (s *stateSdk) WriteStringByKey(ctx types.Context, key string, value string) error {
	return s.write(ctx, key, []byte(value))
}

// a key that was never written reads as zero
func (s *stateSdk) ReadUint64ByKey(ctx types.Context, key string) (uint64, error) {
	value, err := s.read(ctx, key)
	if err != nil || len(value) < uint64Size {
		return 0, err
	}
	return membuffers.GetUint64(value), nil
}

func (s *stateSdk) WriteUint64ByKey(ctx types.Context, key string, value uint64) error {
	encoded := make([]byte, uint64Size)
	membuffers.WriteUint64(encoded, value)
	return s.write(ctx, key, encoded)
}

// signed values share the uint64 encoding, two's complement
func (s *stateSdk) ReadInt64ByKey(ctx types.Context, key string) (int64, error) {
	value, err := s.ReadUint64ByKey(ctx, key)
	return int64(value), err
}

func (s *stateSdk) WriteInt64ByKey(ctx types.Context, key string, value int64) error {
	return s.WriteUint64ByKey(ctx, key, uint64(value))
}

func (s *stateSdk) ClearByKey(ctx types.Context, key string) error {
	return s.write(ctx, key, []byte{})
}
