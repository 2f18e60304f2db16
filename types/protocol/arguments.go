// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

import (
	"encoding/hex"
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

type ArgumentType uint16

const (
	ARGUMENT_TYPE_RESERVED      ArgumentType = 0
	ARGUMENT_TYPE_UINT_32_VALUE ArgumentType = 1
	ARGUMENT_TYPE_UINT_64_VALUE ArgumentType = 2
	ARGUMENT_TYPE_INT_64_VALUE  ArgumentType = 3
	ARGUMENT_TYPE_STRING_VALUE  ArgumentType = 4
	ARGUMENT_TYPE_BYTES_VALUE   ArgumentType = 5
)

var argumentTypeNames = map[ArgumentType]string{
	ARGUMENT_TYPE_RESERVED:      "reserved",
	ARGUMENT_TYPE_UINT_32_VALUE: "uint32",
	ARGUMENT_TYPE_UINT_64_VALUE: "uint64",
	ARGUMENT_TYPE_INT_64_VALUE:  "int64",
	ARGUMENT_TYPE_STRING_VALUE:  "string",
	ARGUMENT_TYPE_BYTES_VALUE:   "bytes",
}

func (x ArgumentType) String() string {
	return argumentTypeNames[x]
}

func (x ArgumentType) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *ArgumentType) UnmarshalText(text []byte) error {
	for value, name := range argumentTypeNames {
		if name == string(text) {
			*x = value
			return nil
		}
	}
	return errors.Errorf("unknown argument type %s", text)
}

// Argument is a single typed value passed to or returned from a contract method.
// Name is optional; when present it is matched against the method's declared argument names.
type Argument struct {
	Name        string       `json:"name,omitempty"`
	Type        ArgumentType `json:"type"`
	Uint32Value uint32       `json:"uint32,omitempty"`
	Uint64Value uint64       `json:"uint64,omitempty"`
	Int64Value  int64        `json:"int64,omitempty"`
	StringValue string       `json:"string,omitempty"`
	BytesValue  []byte       `json:"bytes,omitempty"`
}

func (a *Argument) IsTypeUint32Value() bool {
	return a.Type == ARGUMENT_TYPE_UINT_32_VALUE
}

func (a *Argument) IsTypeUint64Value() bool {
	return a.Type == ARGUMENT_TYPE_UINT_64_VALUE
}

func (a *Argument) IsTypeInt64Value() bool {
	return a.Type == ARGUMENT_TYPE_INT_64_VALUE
}

func (a *Argument) IsTypeStringValue() bool {
	return a.Type == ARGUMENT_TYPE_STRING_VALUE
}

func (a *Argument) IsTypeBytesValue() bool {
	return a.Type == ARGUMENT_TYPE_BYTES_VALUE
}

func (a *Argument) Native() interface{} {
	switch a.Type {
	case ARGUMENT_TYPE_UINT_32_VALUE:
		return a.Uint32Value
	case ARGUMENT_TYPE_UINT_64_VALUE:
		return a.Uint64Value
	case ARGUMENT_TYPE_INT_64_VALUE:
		return a.Int64Value
	case ARGUMENT_TYPE_STRING_VALUE:
		return a.StringValue
	case ARGUMENT_TYPE_BYTES_VALUE:
		return a.BytesValue
	}
	return nil
}

func (a *Argument) String() string {
	var value string
	if a.IsTypeBytesValue() {
		value = hex.EncodeToString(a.BytesValue)
	} else {
		value = fmt.Sprintf("%v", a.Native())
	}
	if a.Name == "" {
		return fmt.Sprintf("%s(%s)", a.Type, value)
	}
	return fmt.Sprintf("%s:%s(%s)", a.Name, a.Type, value)
}

type ArgumentArray []*Argument

func (arr ArgumentArray) String() string {
	parts := make([]string, 0, len(arr))
	for _, arg := range arr {
		parts = append(parts, arg.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (arr ArgumentArray) Natives() []interface{} {
	res := make([]interface{}, 0, len(arr))
	for _, arg := range arr {
		res = append(res, arg.Native())
	}
	return res
}

// AllNamed is true when the array is non empty and every argument carries a name.
func (arr ArgumentArray) AllNamed() bool {
	if len(arr) == 0 {
		return false
	}
	for _, arg := range arr {
		if arg.Name == "" {
			return false
		}
	}
	return true
}

func ArgumentFromNative(name string, value interface{}) (*Argument, error) {
	switch v := value.(type) {
	case uint32:
		return &Argument{Name: name, Type: ARGUMENT_TYPE_UINT_32_VALUE, Uint32Value: v}, nil
	case uint64:
		return &Argument{Name: name, Type: ARGUMENT_TYPE_UINT_64_VALUE, Uint64Value: v}, nil
	case int64:
		return &Argument{Name: name, Type: ARGUMENT_TYPE_INT_64_VALUE, Int64Value: v}, nil
	case int:
		return &Argument{Name: name, Type: ARGUMENT_TYPE_INT_64_VALUE, Int64Value: int64(v)}, nil
	case string:
		return &Argument{Name: name, Type: ARGUMENT_TYPE_STRING_VALUE, StringValue: v}, nil
	case []byte:
		return &Argument{Name: name, Type: ARGUMENT_TYPE_BYTES_VALUE, BytesValue: v}, nil
	}
	return nil, errors.Errorf("argument %q has unsupported type %T", name, value)
}

func ArgumentArrayFromNatives(args ...interface{}) (ArgumentArray, error) {
	res := make(ArgumentArray, 0, len(args))
	for i, value := range args {
		arg, err := ArgumentFromNative("", value)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i)
		}
		res = append(res, arg)
	}
	return res, nil
}
