package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"umlroute/importer"
	"umlroute/render"
)

// view shows the routed scene on the terminal until the user quits. With
// -watch the view follows changes to the scene file.
func (a *app) view(ctx context.Context) error {
	res, err := a.route(ctx)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	frame := render.NewFrame(res)
	viewer := render.NewViewer(screen)
	viewer.SetFrame(frame)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var updates chan *render.Frame
	if a.cfg.watch {
		w, err := importer.NewWatcher(a.cfg.input)
		if err != nil {
			return err
		}
		defer w.Close()

		updates = make(chan *render.Frame)
		go a.follow(ctx, w, frame, updates)
	}
	return viewer.Run(ctx, updates)
}

// follow sends a new frame for every change the watcher reports. Scenes that
// fail to route keep the last good frame and show the error in the title.
func (a *app) follow(ctx context.Context, w *importer.Watcher, last *render.Frame, updates chan<- *render.Frame) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-w.Events:
			if !ok {
				return
			}
			var frame *render.Frame
			if res, err := a.route(ctx); err != nil {
				stale := *last
				stale.Title = "error: " + err.Error()
				frame = &stale
			} else {
				frame = render.NewFrame(res)
				last = frame
			}
			select {
			case updates <- frame:
			case <-ctx.Done():
				return
			}
		}
	}
}
