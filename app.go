package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stewi1014/gltutorial/scenes"
)

// App is the state the window callbacks and the render loop share.
type App struct {
	window   *glfw.Window
	renderer *scenes.Renderer
}

func NewApp(window *glfw.Window, renderer *scenes.Renderer) *App {
	a := &App{
		window:   window,
		renderer: renderer,
	}

	a.renderer.Resize(window.GetFramebufferSize())
	window.SetFramebufferSizeCallback(a.framebufferSize)

	return a
}

// Run draws frames until the window is asked to close.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.processInput()

		a.renderer.Frame(glfw.GetTime())

		a.window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (a *App) framebufferSize(w *glfw.Window, width, height int) {
	a.renderer.Resize(width, height)
}

func (a *App) processInput() {
	if a.window.GetKey(glfw.KeyEscape) == glfw.Press {
		a.window.SetShouldClose(true)
	}
}
