// Package config is for app wide settings that are unmarshalled
// from Viper (see: github.com/spf13/viper).
package config

import (
	"log"

	"github.com/spf13/viper"
)

// GenomeConfig holds per-reference-genome overrides of the otherwise
// global defaults below. Genomes not present here use the global values.
type GenomeConfig struct {
	// Flank is the default upstream/downstream window size (in bases) used
	// when a part carries no explicit flank modifier.
	Flank int `mapstructure:"flank"`

	// ApproxMargin is the number of bases an approximate slice endpoint is
	// widened by outward, away from the feature, before the sequence is
	// fetched.
	ApproxMargin int `mapstructure:"approx-margin"`
}

// Config is the root-level settings struct for the materialization core.
// It is a mix of settings available from a settings.yaml and whatever
// Viper defaults are seeded by New.
type Config struct {
	// DefaultFlank is the default upstream/downstream window size used for
	// genomes with no entry in Genomes.
	DefaultFlank int `mapstructure:"default-flank"`

	// DefaultApproxMargin is the default approximation-widening margin
	// used for genomes with no entry in Genomes.
	DefaultApproxMargin int `mapstructure:"default-approx-margin"`

	// DefaultRefGenome is the reference genome used when no PPP,
	// assembly, or system pragma names one.
	DefaultRefGenome string `mapstructure:"default-refgenome"`

	// MarkerGeneName is the library gene name fetched for MARKER_PART.
	MarkerGeneName string `mapstructure:"marker-gene"`

	// Genomes holds per-genome overrides, keyed by genome name.
	Genomes map[string]GenomeConfig `mapstructure:"genomes"`

	// CandidateProxyURL is the base URL of the external-part candidate
	// proxy. Empty disables candidate lookup entirely.
	CandidateProxyURL string `mapstructure:"candidate-proxy-url"`
}

// New returns a new Config populated by Viper settings, falling back to
// the defaults seeded below when no settings.yaml or environment
// override is present.
func New() *Config {
	viper.SetDefault("default-flank", 500)
	viper.SetDefault("default-approx-margin", 100)
	viper.SetDefault("default-refgenome", "")
	viper.SetDefault("marker-gene", "URA3")
	viper.SetDefault("candidate-proxy-url", "")

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode config into struct: %v", err)
	}
	return &c
}

// Flank returns the widening window for genome, falling back to
// DefaultFlank when genome has no override.
func (c *Config) Flank(genome string) int {
	if g, ok := c.Genomes[genome]; ok && g.Flank != 0 {
		return g.Flank
	}
	return c.DefaultFlank
}

// ApproxMargin returns the approximation margin for genome, falling back
// to DefaultApproxMargin when genome has no override.
func (c *Config) ApproxMargin(genome string) int {
	if g, ok := c.Genomes[genome]; ok && g.ApproxMargin != 0 {
		return g.ApproxMargin
	}
	return c.DefaultApproxMargin
}
