package main

import (
	"context"

	"github.com/plus3/skiff/driver"
	"github.com/plus3/skiff/ecs"
	"github.com/plus3/skiff/geom"
	"github.com/plus3/skiff/scene"
	"go.uber.org/zap"
)

// watchScene reloads the scene whenever its file changes. Reloads are posted
// to the driver so they land between passes.
func watchScene(ctx context.Context, w *scene.Watcher, d *driver.Driver, g *game, arena geom.Box, log *zap.Logger) {
	log.Info("watching scene")
	for {
		select {
		case <-ctx.Done():
			return

		case path, ok := <-w.Events:
			if !ok {
				return
			}
			d.Post(func(s *ecs.Scheduler) {
				sc, err := scene.Reload(s, path, arena)
				if err != nil {
					log.Warn("scene reload failed, keeping current scene", zap.Error(err))
					return
				}
				g.scene = sc
				log.Info("scene reloaded", zap.String("path", path), zap.Int("objects", s.Len()))
			})

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Warn("scene watch error", zap.Error(err))
		}
	}
}
