// Package config loads runtime configuration for lexdesk.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. An optional .env file in the working directory plus LEXDESK_*
//     environment variables (see parseEnv).
//  3. An optional JSON file selected via -c or -config (see parseJSON).
//  4. Command-line flags (see parseFlags).
//
// Later sources override earlier ones; empty values never override.
//
// Supported flags
//
//	-d string   path of the sqlite database file
//	-f string   documents folder (local storage backend)
//	-b string   storage backend: local or s3
//	-s string   session signing secret
//	-l string   log level: debug, info, warn, error
//	-t int      session lifetime in minutes
//
// # JSON schema
//
//	{
//	  "database_path": "lexdesk.db",
//	  "documents_dir": "documentos",
//	  "storage_backend": "s3",
//	  "s3_bucket": "expedientes",
//	  "s3_region": "us-east-1",
//	  "s3_base_endpoint": "http://127.0.0.1:9000/",
//	  "s3_access_key": "admin",
//	  "s3_secret_key": "secretpassword",
//	  "session_ttl": "8h",
//	  "log_level": "info"
//	}
package config
