/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import (
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/cli"
)

func main() {
	cli.Execute()
}
