//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test runs the unit tests for every package.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Harvest builds the CLI and runs a default harvest into output/chef_leads.csv,
// archiving the run in archive/leads.db.
func Harvest() error {
	mg.SerialDeps(Build, Init)
	return sh.RunV(filepath.Join(binDir, binName), "harvest",
		"--output", filepath.Join("output", "chef_leads.csv"),
		"--db", filepath.Join("archive", "leads.db"))
}
