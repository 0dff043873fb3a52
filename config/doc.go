// Package config loads and validates the application configuration from a
// YAML file, with sane defaults for everything the dashboard needs: server
// port and CORS origins, default ranking depth and anomaly threshold, and an
// optional dataset path for one-shot CLI analysis.
package config
