// This Source Code Form is subject to the terms of the Mozilla Public
// License, version 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Command deltasync is the CLI driver around the deltasync engine, exposing
// backup, restore and verify as subcommands with an exit-code convention
// suitable for scripting.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/c4milo/deltasync"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  deltasync backup <v1> <v2> <chunkSize>")
	fmt.Fprintln(os.Stderr, "  deltasync restore <v1> <deltaFile> <dest>")
	fmt.Fprintln(os.Stderr, "  deltasync verify <dest> <manifest>")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "backup":
		err = runBackup(os.Args[2:])
	case "restore":
		err = runRestore(os.Args[2:])
	case "verify":
		err = runVerify(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "deltasync: %v\n", err)
		os.Exit(1)
	}
}

func runBackup(args []string) error {
	if len(args) != 3 {
		usage()
		return fmt.Errorf("backup requires exactly 3 arguments")
	}
	chunkSize, err := strconv.ParseUint(args[2], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid chunk size %q: %w", args[2], err)
	}
	return deltasync.Backup(args[0], args[1], uint32(chunkSize))
}

func runRestore(args []string) error {
	if len(args) != 3 {
		usage()
		return fmt.Errorf("restore requires exactly 3 arguments")
	}
	return deltasync.Restore(args[0], args[1], args[2])
}

func runVerify(args []string) error {
	if len(args) != 2 {
		usage()
		return fmt.Errorf("verify requires exactly 2 arguments")
	}
	m, err := deltasync.LoadManifest(args[1])
	if err != nil {
		return err
	}
	if err := deltasync.Verify(args[0], m); err != nil {
		return err
	}
	fmt.Println("ok")
	return nil
}
