// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package gammacli

import (
	"encoding/json"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/pkg/errors"
	"io"
	"strings"
)

// ParseArguments turns the json given on the command line into method arguments.
// An object gives named arguments in document order, an array gives positional ones.
// Strings stay strings and integral numbers become int64.
func ParseArguments(raw string) (protocol.ArgumentArray, error) {
	res := protocol.ArgumentArray{}
	if strings.TrimSpace(raw) == "" {
		return res, nil
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Wrap(err, "arguments are not valid json")
	}
	open, ok := tok.(json.Delim)
	if !ok || (open != '{' && open != '[') {
		return nil, errors.New("arguments must be a json object or array")
	}

	for i := 0; dec.More(); i++ {
		name := ""
		if open == '{' {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, errors.Wrap(err, "arguments are not valid json")
			}
			name = keyTok.(string)
		}

		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return nil, errors.Wrap(err, "arguments are not valid json")
		}
		arg, err := argumentFromJson(name, value)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i)
		}
		res = append(res, arg)
	}

	if _, err := dec.Token(); err != nil {
		return nil, errors.Wrap(err, "arguments are not valid json")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after arguments")
	}
	return res, nil
}

func argumentFromJson(name string, value interface{}) (*protocol.Argument, error) {
	switch v := value.(type) {
	case string:
		return protocol.ArgumentFromNative(name, v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return nil, errors.Errorf("number %s is not a 64 bit integer", v)
		}
		return protocol.ArgumentFromNative(name, n)
	}
	return nil, errors.Errorf("value of type %T is not supported, use a string or an integer", value)
}
