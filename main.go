package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stewi1014/gltutorial/internal/config"
	"github.com/stewi1014/gltutorial/internal/glapi"
	"github.com/stewi1014/gltutorial/scenes"
)

func init() {
	// GLFW and the GL context belong to the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		sceneName  = flag.String("scene", "", "scene to draw, one of: "+strings.Join(scenes.Names(), ", "))
		assetDir   = flag.String("assets", "", "directory holding the shader sources")
		strict     = flag.Bool("strict", false, "exit when a shader program fails to build")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
	if *sceneName != "" {
		cfg.Scene = *sceneName
	}
	if *assetDir != "" {
		cfg.Assets = *assetDir
	}
	if *strict {
		cfg.Strict = true
	}
	if err := cfg.Validate(); err != nil {
		log.Println(err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Println(err)
		if cfg.ErrorDialog {
			NewErrorDialog(err)
		}
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw.Init failed: %w", err)
	}
	defer glfw.Terminate()

	window, err := NewWindow(cfg)
	if err != nil {
		return err
	}

	api, err := glapi.Init()
	if err != nil {
		return err
	}

	scene, err := scenes.Get(cfg.Scene)
	if err != nil {
		return err
	}

	renderer, err := scenes.NewRenderer(api, scene, cfg.Assets)
	if renderer == nil {
		return err
	}
	defer renderer.Delete()
	if err != nil {
		if cfg.Strict {
			return err
		}
		log.Println("continuing with shader programs that failed to build")
	}

	app := NewApp(window, renderer)
	app.Run()
	return nil
}
