// Package watcher reports changes to the catalog database made by other
// processes, such as a concurrent `reqdesk seed`.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/reqdesk/internal/log"
	"github.com/zjrosen/reqdesk/internal/pubsub"
)

// Event is the payload published by the watcher.
// Err is set only on pubsub.ErrorEvent.
type Event struct {
	Path string
	Err  error
}

// Config holds watcher configuration options.
type Config struct {
	DBPath   string
	Debounce time.Duration
}

// DefaultConfig debounces bursts of writes into one event per second.
func DefaultConfig(dbPath string) Config {
	return Config{DBPath: dbPath, Debounce: time.Second}
}

// Watcher publishes ChangedEvent after the database (or its WAL) is written.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dbPath    string
	debounce  time.Duration
	broker    *pubsub.Broker[Event]
	done      chan struct{}
}

// New creates a watcher. Call Start to begin watching.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = time.Second
	}
	return &Watcher{
		fsWatcher: fsw,
		dbPath:    cfg.DBPath,
		debounce:  cfg.Debounce,
		broker:    pubsub.NewBroker[Event](pubsub.WithBufferSize(4)),
		done:      make(chan struct{}),
	}, nil
}

// Subscribe streams change and error events.
func (w *Watcher) Subscribe(ctx context.Context) <-chan pubsub.Event[Event] {
	return w.broker.Subscribe(ctx)
}

// Start watches the directory holding the database.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.dbPath)
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}
	log.Debug(log.CatWatcher, "watching", "dir", dir)

	go w.loop()
	return nil
}

// Stop terminates the watcher and closes all subscriptions.
func (w *Watcher) Stop() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	err := w.fsWatcher.Close()
	w.broker.Close()
	return err
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isRelevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			log.Debug(log.CatWatcher, "database changed", "path", w.dbPath)
			w.broker.Publish(pubsub.ChangedEvent, Event{Path: w.dbPath})

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "watch error", err)
			w.broker.Publish(pubsub.ErrorEvent, Event{Path: w.dbPath, Err: err})

		case <-w.done:
			return
		}
	}
}

// isRelevant keeps writes and creates of the database and its WAL file.
func (w *Watcher) isRelevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	base := filepath.Base(event.Name)
	name := filepath.Base(w.dbPath)
	return base == name || base == name+"-wal"
}
