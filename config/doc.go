// Package config loads connection and backend settings from a YAML file
// layered with environment variables, the environment taking precedence. A
// .env file in the working directory is honored via godotenv before the
// environment is read.
package config
