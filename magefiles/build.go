//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Runs go mod download and then builds the demo binary into bin/.
func (Build) Binary() error {
	if _, err := executeCmd("go", withArgs("mod", "download"), withStream()); err != nil {
		return err
	}
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/debugdraw", "."), withStream()); err != nil {
		return err
	}
	return nil
}

// Builds the demo binary without the OpenGL backend.
func (Build) Headless() error {
	if _, err := executeCmd("go", withArgs("build", "-tags", "headless", "-o", "bin/debugdraw-headless", "."), withStream()); err != nil {
		return err
	}
	return nil
}
