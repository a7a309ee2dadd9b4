package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Env holds flag defaults read from UNTABLE_* environment variables.
type Env struct {
	Skip      int     `envconfig:"SKIP" default:"0"`
	Threshold float64 `envconfig:"THRESHOLD" default:"0.8"`
	Deep      bool    `envconfig:"DEEP" default:"false"`
	Format    string  `envconfig:"FORMAT" default:"json"`
}

// loadEnv loads flag defaults from the environment.
func loadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process("untable", &env); err != nil {
		return Env{}, fmt.Errorf("failed to load environment: %w", err)
	}
	return env, nil
}
