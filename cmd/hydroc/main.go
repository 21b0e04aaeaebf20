package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"hydro/pkg/compiler"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Correct usage is...")
	fmt.Fprintln(os.Stderr, "hydroc <input.hy>")
}

// isHydroFile reports whether path ends in the .hy extension.
func isHydroFile(path string) bool {
	return strings.HasSuffix(path, ".hy") && len(path) > len(".hy")
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Incorrect usage.")
		usage()
		os.Exit(1)
	}
	path := os.Args[1]
	if !isHydroFile(path) {
		fmt.Fprintln(os.Stderr, "Incorrect file type. File type must be .hy")
		usage()
		os.Exit(1)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read error:", err)
		os.Exit(1)
	}

	asm, err := compiler.Compile(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := os.WriteFile("out.asm", []byte(asm), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "write error:", err)
		os.Exit(1)
	}

	// Assemble and link with the external toolchain.
	for _, args := range [][]string{
		{"nasm", "-felf64", "out.asm"},
		{"ld", "-o", "out", "out.o"},
	} {
		cmd := exec.Command(args[0], args[1:]...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "%s failed: %v\n", args[0], err)
			os.Exit(1)
		}
	}
}
