//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target runs the full check suite.
var Default = Check

// Build compiles all packages.
func Build() error {
	return sh.RunV("go", "build", "./...")
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check builds, vets and tests.
func Check() error {
	mg.Deps(Build, Vet)
	return Test()
}

// Demo runs the example suite through the console front-end.
func Demo() error {
	return sh.RunV("go", "run", "./examples/demo")
}
