// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package config provides centralized configuration management for Stylist.

Configuration is layered with Koanf v2: struct defaults, then an optional
YAML file, then environment variables. The first YAML file found among
CONFIG_PATH, config.yaml, config.yml and /etc/stylist/config.yaml is used.
Only explicitly mapped environment variables are read; everything else in
the environment is ignored.

# Sections

  - server: HTTP listener (HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, ENVIRONMENT)
  - database: DuckDB file, memory, demo seed, and the read resilience
    policy (query timeout, retry, rate limit, circuit breaker)
  - recommend: engine limits, batching, early termination, profile cache
    TTL and janitor interval, scorer weights
  - security: per-IP rate limiting and CORS origins
  - logging: zerolog level, format, caller

# Example YAML

	server:
	  port: 8080
	database:
	  path: /data/stylist.duckdb
	  seed_demo_data: true
	recommend:
	  batch_size: 8
	  profile_cache_ttl: 5m
	security:
	  cors_origins: ["https://app.example.com"]
	logging:
	  level: debug
	  format: console

Validate returns the first violation as "<path> must be ..., got <value>".
*/
package config
