// Package config loads weave configuration from YAML files and the
// environment.
//
// Configuration is resolved in three layers: a config.yml file, a .env
// file, and process environment variables, with later layers winning.
//
//	logging:
//	  level: "debug"
//	  format: "json"
//	interleave:
//	  end_policy: "clamp"
package config
