package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/zhijia2/DancingLogo/internal/logger"
)

// Watch re-reads the config file at path whenever it is written or
// replaced and passes the fresh, validated config to fn. Command-line
// flags are applied on top, as in Load. Files that fail
// to load or validate are logged and skipped. fn runs on the watcher
// goroutine. The returned stop function closes the watcher.
func Watch(path string, fn func(*Config)) (stop func() error, err error) {
	log := logger.Named("config")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	// Watch the directory: editors often save by renaming a temp file
	// over the original, which drops a watch on the file itself.
	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}

				cfg := Default()
				if err := loadFromFile(cfg, abs); err != nil {
					log.Warn("config reload failed", zap.String("path", abs), zap.Error(err))
					continue
				}
				applyFlags(cfg)
				if err := cfg.Validate(); err != nil {
					log.Warn("reloaded config is invalid", zap.String("path", abs), zap.Error(err))
					continue
				}
				cfg.source = abs
				log.Debug("config reloaded", zap.String("path", abs))
				fn(cfg)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error("config watcher error", zap.Error(err))
			}
		}
	}()

	return watcher.Close, nil
}
