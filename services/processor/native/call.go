// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package native

import (
	"github.com/orbs-network/orbs-counter-playground/services/processor/native/types"
	"github.com/orbs-network/orbs-counter-playground/types/primitives"
	"github.com/orbs-network/orbs-counter-playground/types/protocol"
	"github.com/pkg/errors"
	"reflect"
)

var contextType = reflect.TypeOf((*types.Context)(nil)).Elem()
var errorType = reflect.TypeOf((*error)(nil)).Elem()

func (s *service) retrieveContractAndMethodInstances(contractInfo *types.ContractInfo, methodName primitives.MethodName, permissionScope protocol.ExecutionPermissionScope, accessScope protocol.ExecutionAccessScope) (contractInstance types.Contract, methodInfo types.MethodInfo, err error) {
	methodInfo, found := contractInfo.Methods[methodName]
	if !found {
		return nil, methodInfo, errors.Errorf("method '%s' not found on contract '%s'", methodName, contractInfo.Name)
	}

	if !methodInfo.External && permissionScope != protocol.PERMISSION_SCOPE_SYSTEM {
		return nil, methodInfo, errors.Errorf("only system contracts can run method '%s'", methodName)
	}

	if methodInfo.Access == protocol.ACCESS_SCOPE_READ_WRITE && accessScope != protocol.ACCESS_SCOPE_READ_WRITE {
		return nil, methodInfo, errors.Errorf("method '%s' writes state and cannot run with access scope %s", methodName, accessScope)
	}

	return s.getContractInstance(contractInfo), methodInfo, nil
}

func processMethodCall(ctx types.Context, contractInstance types.Contract, methodInfo types.MethodInfo, args protocol.ArgumentArray, functionNameForErrors string) (contractOutputArgs protocol.ArgumentArray, contractOutputErr error, err error) {

	defer func() {
		if r := recover(); r != nil {
			contractOutputErr = errors.Errorf("%s", r)
			contractOutputArgs = createMethodOutputArgsWithString(contractOutputErr.Error())
		}
	}()

	if err := verifyMethodSignature(methodInfo, functionNameForErrors); err != nil {
		return nil, nil, err
	}

	// verify input args
	inValues, err := prepareMethodInputArgsForCall(ctx, contractInstance, methodInfo, args, functionNameForErrors)
	if err != nil {
		return nil, nil, err
	}

	// execute the call
	outValues := reflect.ValueOf(methodInfo.Implementation).Call(inValues)

	// last output is always the contract error
	if errValue := outValues[len(outValues)-1]; !errValue.IsNil() {
		contractOutputErr = errValue.Interface().(error)
	}

	// create output args
	contractOutputArgs, err = createMethodOutputArgs(outValues[:len(outValues)-1], functionNameForErrors)
	if err != nil {
		return nil, nil, err
	}

	return contractOutputArgs, contractOutputErr, nil
}

// a method implementation is a method expression: receiver, context, args... returning outputs... and error
func verifyMethodSignature(methodInfo types.MethodInfo, functionNameForErrors string) error {
	if methodInfo.Implementation == nil {
		return errors.Errorf("method '%s' has no implementation", functionNameForErrors)
	}
	methodType := reflect.TypeOf(methodInfo.Implementation)
	if methodType.Kind() != reflect.Func {
		return errors.Errorf("method '%s' implementation is not a function", functionNameForErrors)
	}
	if methodType.NumIn() < 2 || methodType.In(1) != contextType {
		return errors.Errorf("method '%s' must take the contract and a context as its first args", functionNameForErrors)
	}
	if methodType.NumOut() == 0 || methodType.Out(methodType.NumOut()-1) != errorType {
		return errors.Errorf("method '%s' must return an error as its last output", functionNameForErrors)
	}
	if len(methodInfo.ArgNames) != 0 && len(methodInfo.ArgNames) != methodType.NumIn()-2 {
		return errors.Errorf("method '%s' declares %d arg names but takes %d args", functionNameForErrors, len(methodInfo.ArgNames), methodType.NumIn()-2)
	}
	return nil
}

func prepareMethodInputArgsForCall(ctx types.Context, contractInstance types.Contract, methodInfo types.MethodInfo, args protocol.ArgumentArray, functionNameForErrors string) ([]reflect.Value, error) {
	methodType := reflect.TypeOf(methodInfo.Implementation)
	if reflect.TypeOf(contractInstance) != methodType.In(0) {
		return nil, errors.Errorf("method '%s' does not belong to contract instance of type %T", functionNameForErrors, contractInstance)
	}
	res := []reflect.Value{reflect.ValueOf(contractInstance), reflect.ValueOf(ctx)}

	if args.AllNamed() {
		arranged, err := arrangeNamedArgs(methodInfo, args, functionNameForErrors)
		if err != nil {
			return nil, err
		}
		args = arranged
	}

	numArgs := methodType.NumIn() - 2
	if len(args) != numArgs {
		return nil, errors.Errorf("method '%s' takes %d args but received %d", functionNameForErrors, numArgs, len(args))
	}

	for i, arg := range args {
		argType := methodType.In(i + 2)
		value, err := argumentToValue(arg, argType)
		if err != nil {
			return nil, errors.Wrapf(err, "method '%s' arg %d", functionNameForErrors, i)
		}
		res = append(res, value)
	}

	return res, nil
}

type argumentConversion struct {
	argumentType protocol.ArgumentType
	toValue      func(arg *protocol.Argument) reflect.Value
	fromValue    func(value reflect.Value) *protocol.Argument
}

// argument kinds a contract method may take or return, []byte is keyed by reflect.Slice
var conversions = map[reflect.Kind]argumentConversion{
	reflect.Uint32: {
		protocol.ARGUMENT_TYPE_UINT_32_VALUE,
		func(arg *protocol.Argument) reflect.Value { return reflect.ValueOf(arg.Uint32Value) },
		func(v reflect.Value) *protocol.Argument {
			return &protocol.Argument{Type: protocol.ARGUMENT_TYPE_UINT_32_VALUE, Uint32Value: uint32(v.Uint())}
		},
	},
	reflect.Uint64: {
		protocol.ARGUMENT_TYPE_UINT_64_VALUE,
		func(arg *protocol.Argument) reflect.Value { return reflect.ValueOf(arg.Uint64Value) },
		func(v reflect.Value) *protocol.Argument {
			return &protocol.Argument{Type: protocol.ARGUMENT_TYPE_UINT_64_VALUE, Uint64Value: v.Uint()}
		},
	},
	reflect.Int64: {
		protocol.ARGUMENT_TYPE_INT_64_VALUE,
		func(arg *protocol.Argument) reflect.Value { return reflect.ValueOf(arg.Int64Value) },
		func(v reflect.Value) *protocol.Argument {
			return &protocol.Argument{Type: protocol.ARGUMENT_TYPE_INT_64_VALUE, Int64Value: v.Int()}
		},
	},
	reflect.String: {
		protocol.ARGUMENT_TYPE_STRING_VALUE,
		func(arg *protocol.Argument) reflect.Value { return reflect.ValueOf(arg.StringValue) },
		func(v reflect.Value) *protocol.Argument {
			return &protocol.Argument{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: v.String()}
		},
	},
	reflect.Slice: {
		protocol.ARGUMENT_TYPE_BYTES_VALUE,
		func(arg *protocol.Argument) reflect.Value { return reflect.ValueOf(arg.BytesValue) },
		func(v reflect.Value) *protocol.Argument {
			return &protocol.Argument{Type: protocol.ARGUMENT_TYPE_BYTES_VALUE, BytesValue: v.Bytes()}
		},
	},
}

func conversionFor(t reflect.Type) (argumentConversion, error) {
	if t.Kind() == reflect.Slice && t.Elem().Kind() != reflect.Uint8 {
		return argumentConversion{}, errors.Errorf("slice of %s is not supported, only bytes", t.Elem())
	}
	conversion, found := conversions[t.Kind()]
	if !found {
		return argumentConversion{}, errors.Errorf("type %s is not supported", t)
	}
	return conversion, nil
}

func argumentToValue(arg *protocol.Argument, expected reflect.Type) (reflect.Value, error) {
	conversion, err := conversionFor(expected)
	if err != nil {
		return reflect.Value{}, err
	}
	if arg.Type != conversion.argumentType {
		return reflect.Value{}, errors.Errorf("expected %s but it has %s", conversion.argumentType, arg.Type)
	}
	return conversion.toValue(arg).Convert(expected), nil
}

func arrangeNamedArgs(methodInfo types.MethodInfo, args protocol.ArgumentArray, functionNameForErrors string) (protocol.ArgumentArray, error) {
	if len(args) != len(methodInfo.ArgNames) {
		return nil, errors.Errorf("method '%s' takes %d args but received %d", functionNameForErrors, len(methodInfo.ArgNames), len(args))
	}

	byName := make(map[string]*protocol.Argument, len(args))
	for _, arg := range args {
		if _, duplicate := byName[arg.Name]; duplicate {
			return nil, errors.Errorf("method '%s' received arg '%s' more than once", functionNameForErrors, arg.Name)
		}
		byName[arg.Name] = arg
	}

	res := make(protocol.ArgumentArray, 0, len(args))
	for _, name := range methodInfo.ArgNames {
		arg, found := byName[name]
		if !found {
			return nil, errors.Errorf("method '%s' is missing arg '%s'", functionNameForErrors, name)
		}
		res = append(res, arg)
	}
	return res, nil
}

func createMethodOutputArgs(values []reflect.Value, functionNameForErrors string) (protocol.ArgumentArray, error) {
	res := make(protocol.ArgumentArray, 0, len(values))
	for i, value := range values {
		conversion, err := conversionFor(value.Type())
		if err != nil {
			return nil, errors.Wrapf(err, "method '%s' output arg %d", functionNameForErrors, i)
		}
		res = append(res, conversion.fromValue(value))
	}
	return res, nil
}

func createMethodOutputArgsWithString(str string) protocol.ArgumentArray {
	return protocol.ArgumentArray{{Type: protocol.ARGUMENT_TYPE_STRING_VALUE, StringValue: str}}
}
