/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/debugdraw/engine"
	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/testbed"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file, watched for changes")
	backend := flag.String("backend", "", "override the configured backend (software, opengl)")
	frames := flag.Uint64("frames", 0, "override the number of frames to render")
	screenshot := flag.String("screenshot", "", "write the last frame to this image file (png, bmp, tiff)")
	flag.Parse()

	config := engine.DefaultApplicationConfig()
	if *configPath != "" {
		loaded, err := engine.LoadApplicationConfig(*configPath)
		if err != nil {
			core.LogFatal("failed to load config: %s", err)
		}
		config = loaded
	}
	if *backend != "" {
		config.Backend = *backend
	}
	if *frames != 0 {
		config.Frames = *frames
	}

	tb := testbed.NewTestGame(config, *configPath)

	e, err := engine.New(tb.Game)
	if err != nil {
		core.LogFatal(err.Error())
	}

	if err := e.Initialize(); err != nil {
		core.LogFatal(err.Error())
	}

	// capture sigterm and other system calls to stop the frame loop
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	runErr := e.Run(ctx)
	if runErr == nil && *screenshot != "" {
		if err := e.Screenshot(*screenshot); err != nil {
			core.LogError("screenshot: %s", err)
		}
	}
	if err := e.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err)
	}
	if runErr != nil {
		core.LogError(runErr.Error())
		os.Exit(1)
	}
}
