// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Polls the configuration file for modifications and reloads
//              it, notifying registered change handlers.
// Author: felpofo
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file watching
// - 2026-10-19 v0.2.0: Stop channel, configurable interval, kfg reloads

package config

import (
	"os"
	"time"

	mdwerror "github.com/felpofo/kfg/foundation/core/error"
)

// DefaultWatchInterval is the polling interval used when none is given
const DefaultWatchInterval = time.Second

// Watch starts polling the configuration file every interval. Calling it on
// a config that is already watched is a no-op.
func (c *Config) Watch(interval time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.filePath == "" {
		return mdwerror.New("file path required for watching").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("config.Watch")
	}
	if c.stop != nil {
		return nil
	}
	if interval <= 0 {
		interval = DefaultWatchInterval
	}

	c.stop = make(chan struct{})
	go c.poll(interval, c.stop)
	return nil
}

func (c *Config) poll(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		info, err := os.Stat(c.filePath)
		if err != nil {
			// deleted or being replaced
			continue
		}

		c.mu.RLock()
		lastModified := c.lastModified
		c.mu.RUnlock()

		if info.ModTime().After(lastModified) {
			// a broken edit keeps the previous data
			_ = c.reload()
		}
	}
}

// reload reloads the configuration from the file and notifies watchers
func (c *Config) reload() error {
	content, err := os.ReadFile(c.filePath)
	if err != nil {
		return mdwerror.Wrap(err, "failed to read config file during reload").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath)
	}

	info, _ := os.Stat(c.filePath)

	newData, err := parseContent(content, c.format)
	if err != nil {
		// remember the timestamp so the same broken file is not parsed again
		c.mu.Lock()
		if info != nil {
			c.lastModified = info.ModTime()
		}
		c.mu.Unlock()
		return mdwerror.Wrap(err, "failed to parse config file during reload").
			WithCode(codeFor(c.format)).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath).
			WithDetail("format", c.format.String())
	}

	c.mu.Lock()
	oldConfig := &Config{
		data:     deepCopyMap(c.data),
		filePath: c.filePath,
		format:   c.format,
	}

	c.data = newData
	if info != nil {
		c.lastModified = info.ModTime()
	}

	watchers := make([]ChangeHandler, len(c.watchers))
	copy(watchers, c.watchers)

	newConfig := &Config{
		data:     deepCopyMap(c.data),
		filePath: c.filePath,
		format:   c.format,
	}
	c.mu.Unlock()

	for _, handler := range watchers {
		if handler != nil {
			go handler(oldConfig, newConfig)
		}
	}

	return nil
}

// StopWatching stops file monitoring
func (c *Config) StopWatching() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stop != nil
}
