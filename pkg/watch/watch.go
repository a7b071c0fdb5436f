// Copyright 2026 CICD AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");

// Package watch re-runs work when an input file changes on disk.
package watch

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/cicd-ai-toolkit/issue-insights/pkg/errors"
	"github.com/cicd-ai-toolkit/issue-insights/pkg/observability"
)

// File calls onChange once immediately and again every time path is written
// or re-created, until ctx is cancelled. Errors from onChange are logged and
// do not stop the watch.
//
// The parent directory is watched so that editors saving via rename keep
// triggering events.
func File(ctx context.Context, path string, logger observability.Logger, onChange func() error) error {
	if logger == nil {
		logger = observability.Default()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.IOError("failed to resolve watch path", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.IOError("failed to create file watcher", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.IOError("failed to watch "+filepath.Dir(abs), err)
	}

	log := logger.With(observability.String("path", abs))
	run := func() {
		if err := onChange(); err != nil {
			log.Error("watch: update failed", observability.Err(err))
		}
	}

	log.Info("watch: watching for changes")
	run()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Debug("watch: change detected", observability.String("op", event.Op.String()))
			run()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error("watch: watcher error", observability.Err(err))
		}
	}
}
