// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command hwlogic evaluates the chips of the hwlib package.
//
//	hwlogic parts                      list chips and their pins
//	hwlogic eval Add16 a=5 b=-3        evaluate a chip
//	hwlogic alu x-y 17 3               run an ALU operation
//	hwlogic table Mux                  print a truth table
//	hwlogic check testdata/*.yaml      run test vector scripts
//
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("hwlogic: ")
	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
