//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the testbed with the sample config, reloading it on change.
func (Run) Demo() error {
	fmt.Println("Run demo...")
	if _, err := executeCmd("go", withArgs("run", "main.go", "-config", "debugdraw.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the testbed on a real GL context.
func (Run) OpenGL() error {
	mg.Deps(Build.Binary)
	if _, err := executeCmd("bin/debugdraw", withArgs("-config", "debugdraw.toml", "-backend", "opengl"), withStream()); err != nil {
		return err
	}
	return nil
}
