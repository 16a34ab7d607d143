package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/shaderbackdrop/console"
	"github.com/richinsley/shaderbackdrop/glfwcontext"
	"github.com/richinsley/shaderbackdrop/landing"
	"github.com/richinsley/shaderbackdrop/options"
	"github.com/richinsley/shaderbackdrop/renderer"
	"github.com/richinsley/shaderbackdrop/shader"
)

func init() {
	runtime.LockOSThread()
}

func runBackdrop(opts *options.BackdropOptions, cfg *landing.Config, policy shader.Policy) {
	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfwcontext.TerminateGraphics()

	win, err := glfwcontext.New(opts, cfg.Title)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer win.Shutdown()

	for i := range cfg.Panels {
		panel := cfg.Panels[i]
		win.RegisterKeyCallback(glfw.Key1+glfw.Key(i), func() {
			log.Printf("Opening %s: %s", panel.Title, panel.URL)
			if err := landing.Open(panel); err != nil {
				log.Printf("%v", err)
			}
		})
	}

	// empty sources fail to compile, so the background disables itself
	sources, err := shader.Build(policy, win.IsGLES())
	if err != nil {
		log.Printf("Shader %s unavailable: %v", policy, err)
	}
	bg := renderer.Mount(win, renderer.Options{
		Sources:    sources,
		ClearColor: [4]float32{0, 0, 0, 1},
		Class:      string(policy),
	})
	defer bg.Unmount()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	runCtx, cancel := context.WithCancel(sigCtx)

	consoleDone := make(chan struct{})
	if *opts.NoConsole {
		close(consoleDone)
	} else {
		header := &console.Header{
			Title:     cfg.Title,
			Banner:    cfg.Banner,
			Panels:    cfg.Panels,
			GLEnabled: bg.Active(),
		}
		go func() {
			defer close(consoleDone)
			console.Run(runCtx, header, console.NewTerminal(os.Stdout))
		}()
	}

	log.Println("Starting render loop...")
	win.Run(runCtx)
	cancel()
	<-consoleDone
}

func main() {
	opts, err := options.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

	if *opts.Help {
		fmt.Println("Shader Backdrop landing page")
		fmt.Printf("Shaders: %v\n", shader.Policies())
		options.PrintDefaults(os.Stdout)
		return
	}

	cfg, err := landing.Load(*opts.ConfigFile)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	name := cfg.Shader
	if *opts.Shader != "" {
		name = *opts.Shader
	}
	policy, err := shader.ParsePolicy(name)
	if err != nil {
		log.Fatalf("%v", err)
	}

	runBackdrop(opts, cfg, policy)
}
