// Package config loads configuration files into a nested map with typed,
// dot-path access.
//
// Package: config
// Title: Core Configuration Management
// Description: TOML, YAML and kfg files are decoded into
//              map[string]interface{}. Values are read with GetString,
//              GetInt and friends, environment variables override file
//              values, and a polling watcher reloads modified files.
// Author: felpofo
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-19 v0.2.0: kfg format, removed struct binding and validation
//
// Basic loading:
//
//	cfg, err := config.Load("app.kfg")
//	if err != nil {
//		return err
//	}
//	host := cfg.GetString("server.host", "localhost")
//	port := cfg.GetInt("server.port", 8080)
//
// kfg scopes map to nested keys, so "server::port = 8080" is read as
// "server.port". kfg integers arrive as int64, floats as float64 and null
// as a present key with a nil value.
//
// Environment overrides use the upper-cased key with dots replaced by
// underscores, prefixed with LoadOptions.EnvPrefix when set:
//
//	cfg, _ := config.LoadWithOptions("app.kfg", config.LoadOptions{EnvPrefix: "APP"})
//	cfg.GetInt("server.port") // APP_SERVER_PORT wins when set
//
// Hot reloading:
//
//	cfg.OnChange(func(old, updated *config.Config) { ... })
//	cfg.Watch(time.Second)
//	defer cfg.StopWatching()
package config
