// SPDX-License-Identifier: MPL-2.0

// Command condashim is the conda environment launcher shim.
package main

import cmd "github.com/eventlOwOp/R-with-conda/cmd/condashim"

func main() {
	cmd.Execute()
}
