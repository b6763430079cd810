package main

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/lofx"
)

//go:embed shaders
var builtinShaders embed.FS

// shaderSource reads shader files from dir, or from the copies built into
// the binary when dir is empty.
type shaderSource struct {
	dir string
}

func (s shaderSource) read(name string) (string, error) {
	var (
		b   []byte
		err error
	)
	if s.dir == "" {
		b, err = builtinShaders.ReadFile("shaders/" + name)
	} else {
		b, err = os.ReadFile(filepath.Join(s.dir, name))
	}
	if err != nil {
		return "", fmt.Errorf("read shader %s: %w", name, err)
	}
	return string(b), nil
}

// shaderStage maps a shader file extension to its stage.
func shaderStage(name string) (lofx.StageMask, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".vert":
		return lofx.StageVertex, true
	case ".tesc":
		return lofx.StageTessControl, true
	case ".tese":
		return lofx.StageTessEvaluation, true
	case ".geom":
		return lofx.StageGeometry, true
	case ".frag":
		return lofx.StageFragment, true
	case ".comp":
		return lofx.StageCompute, true
	}
	return 0, false
}

// watchShaders reports the base names of shader files written under dir.
// Events are dropped while the previous ones have not been consumed.
func watchShaders(dir string) (<-chan string, func() error, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("watch shaders: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, nil, fmt.Errorf("watch shaders in %s: %w", dir, err)
	}

	changes := make(chan string, 8)
	go func() {
		defer close(changes)
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				name := filepath.Base(event.Name)
				if _, ok := shaderStage(name); !ok {
					continue
				}
				select {
				case changes <- name:
				default:
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("shader watcher", "error", err)
			}
		}
	}()
	return changes, w.Close, nil
}
