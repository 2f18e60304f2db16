// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package digest

import (
	"github.com/orbs-network/membuffers/go"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
)

// canonicalWriter lays fields out little endian with uint32 length prefixes so equal values always hash the same
type canonicalWriter struct {
	buf []byte
}

func (w *canonicalWriter) uint32(v uint32) {
	b := make([]byte, 4)
	membuffers.WriteUint32(b, v)
	w.buf = append(w.buf, b...)
}

func (w *canonicalWriter) uint64(v uint64) {
	b := make([]byte, 8)
	membuffers.WriteUint64(b, v)
	w.buf = append(w.buf, b...)
}

func (w *canonicalWriter) bytes(v []byte) {
	w.uint32(uint32(len(v)))
	w.buf = append(w.buf, v...)
}

func (w *canonicalWriter) string(v string) {
	w.bytes([]byte(v))
}

func (w *canonicalWriter) arguments(args protocol.ArgumentArray) {
	w.uint32(uint32(len(args)))
	for _, arg := range args {
		w.string(arg.Name)
		w.uint32(uint32(arg.Type))
		switch arg.Type {
		case protocol.ARGUMENT_TYPE_UINT_32_VALUE:
			w.uint32(arg.Uint32Value)
		case protocol.ARGUMENT_TYPE_UINT_64_VALUE:
			w.uint64(arg.Uint64Value)
		case protocol.ARGUMENT_TYPE_INT_64_VALUE:
			w.uint64(uint64(arg.Int64Value))
		case protocol.ARGUMENT_TYPE_STRING_VALUE:
			w.string(arg.StringValue)
		case protocol.ARGUMENT_TYPE_BYTES_VALUE:
			w.bytes(arg.BytesValue)
		}
	}
}

func encodeTransaction(tx *protocol.Transaction) []byte {
	w := &canonicalWriter{}
	w.uint32(uint32(tx.ProtocolVersion))
	w.uint64(uint64(tx.Timestamp))
	w.string(string(tx.Signer))
	w.bytes(tx.SignerPublicKey)
	w.string(string(tx.Receiver))
	w.uint32(uint32(tx.Action))
	w.string(string(tx.MethodName))
	w.arguments(tx.InputArguments)
	w.bytes(tx.Code)
	return w.buf
}

func encodeQuery(query *protocol.Query) []byte {
	w := &canonicalWriter{}
	w.uint32(uint32(query.ProtocolVersion))
	w.uint64(uint64(query.Timestamp))
	w.string(string(query.Signer))
	w.string(string(query.Receiver))
	w.string(string(query.MethodName))
	w.arguments(query.InputArguments)
	return w.buf
}
