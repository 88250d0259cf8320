//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every test with the race detector. The OpenGL tests skip themselves
// when no context can be created.
func (Test) All() error {
	if _, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs every test built with the headless tag, which leaves out the OpenGL
// backend and its glfw platform so no X11 or GL headers are needed.
func (Test) Headless() error {
	if _, err := executeCmd("go", withArgs("test", "-tags", "headless", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}
