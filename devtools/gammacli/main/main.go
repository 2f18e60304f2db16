// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package main

import (
	"github.com/orbs-network/orbs-counter-playground/devtools/gammacli/commands"
	"os"
)

// gamma-cli login --accountId user1
// gamma-cli build --out out
// gamma-cli deploy --accountId user1 --wasmFile out/counter.wasm
// gamma-cli call user1 increment --accountId user1
// gamma-cli view user1 get_num
func main() {
	os.Exit(commands.Execute())
}
