/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import (
	"log"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
