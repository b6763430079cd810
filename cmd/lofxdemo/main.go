// Command lofxdemo renders a lit, rotating cube through an offscreen
// two-target framebuffer.
//
// Usage:
//
//	lofxdemo [-c config.yaml] [-b glfw|headless] [-s shaderdir] [-o out.png]
//
// With -s, shaders are loaded from shaderdir instead of the built-in copies
// and recompiled whenever a file there changes. With -o, the albedo target
// of the first frame is written as PNG. The headless backend renders one
// frame against an in-memory GL recorder, which needs no GPU.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/pborman/getopt"

	"github.com/gogpu/lofx"
	_ "github.com/gogpu/lofx/backend/glfw"
	_ "github.com/gogpu/lofx/backend/headless"
)

func init() {
	runtime.LockOSThread()
}

type options struct {
	config     string
	backend    string
	width      int
	height     int
	shaders    string
	screenshot string
}

func main() {
	config := getopt.StringLong("config", 'c', "", "YAML configuration file")
	backendName := getopt.StringLong("backend", 'b', "", "backend: glfw or headless")
	width := getopt.IntLong("width", 'w', 0, "window width")
	height := getopt.IntLong("height", 'h', 0, "window height")
	shaders := getopt.StringLong("shaders", 's', "", "load and watch shaders in this directory")
	screenshot := getopt.StringLong("screenshot", 'o', "", "write the first frame to this PNG file")
	help := getopt.BoolLong("help", '?', "show this help")
	getopt.Parse()
	if *help {
		getopt.Usage()
		return
	}

	opts := options{
		config:     *config,
		backend:    *backendName,
		width:      *width,
		height:     *height,
		shaders:    *shaders,
		screenshot: *screenshot,
	}
	if err := run(opts); err != nil {
		slog.Error("lofxdemo failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig(opts options) (lofx.Config, error) {
	cfg := lofx.DefaultConfig()
	if opts.config != "" {
		var err error
		if cfg, err = lofx.LoadConfig(opts.config); err != nil {
			return cfg, err
		}
	}
	if opts.backend != "" {
		cfg.Backend = opts.backend
	}
	if opts.width > 0 {
		cfg.Window.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Window.Height = opts.height
	}
	cfg.Window.Title = "lofxdemo"
	return cfg, cfg.Validate()
}

func run(opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	lofx.SetLogger(logger)

	ctx, err := lofx.Init(cfg, lofx.WithDebugCallback(func(d lofx.DebugDetails, msg string) {
		if d.Source != lofx.SourceOpenGL {
			return
		}
		var p lofx.OpenGLParams
		if err := p.UnmarshalBinary(d.Params); err == nil {
			logger.Debug("driver message", "id", p.ID, "type", fmt.Sprintf("0x%04X", uint32(p.Type)))
		}
	}))
	if err != nil {
		return err
	}
	defer ctx.Terminate()

	major, minor := ctx.Version()
	slog.Info("context ready", "backend", ctx.Surface().Name(), "gl", fmt.Sprintf("%d.%d", major, minor), "renderer", ctx.Renderer())

	width, height := ctx.Surface().FramebufferSize()
	sc, err := newScene(ctx, shaderSource{dir: opts.shaders}, width, height)
	if err != nil {
		return err
	}
	defer sc.release()

	var changes <-chan string
	if opts.shaders != "" {
		var stop func() error
		changes, stop, err = watchShaders(opts.shaders)
		if err != nil {
			return err
		}
		defer stop()
	}

	first := true
	var shotErr error
	ctx.Loop(func() {
		for pending := true; pending; {
			select {
			case name, ok := <-changes:
				if !ok {
					changes = nil
					continue
				}
				sc.reload(name)
			default:
				pending = false
			}
		}

		sc.frame()
		if first && opts.screenshot != "" {
			shotErr = sc.screenshot(opts.screenshot)
			if shotErr == nil {
				slog.Info("screenshot written", "path", opts.screenshot)
			}
		}
		first = false
	})
	return shotErr
}
