// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"
	"runtime"

	"github.com/spf13/viper"
)

// BarcodeConfig is settings for positional barcode classification.
type BarcodeConfig struct {
	// a barcode hit within this many bases of a read's 5' end counts
	HeadMargin int `mapstructure:"head-margin"`

	// a barcode hit within this many bases of a read's 3' end counts,
	// measured against the file's average read length
	TailWindow int `mapstructure:"tail-window"`
}

// DemuxConfig is settings for the cutadapt invocation.
type DemuxConfig struct {
	// the maximum error rate passed to cutadapt (-e)
	ErrorRate float64 `mapstructure:"error-rate"`
}

// Config is the root-level settings struct and is a mix
// of settings available in settings.yaml and those
// available from the command line
type Config struct {
	// the number of workers forwarded to external tools (-j)
	Workers int `mapstructure:"workers"`

	// whether to echo external tool invocations to stderr
	Verbose bool `mapstructure:"verbose"`

	// barcode classification settings
	Barcode BarcodeConfig `mapstructure:"barcode"`

	// cutadapt settings
	Demux DemuxConfig `mapstructure:"demux"`
}

// New returns a new Config struct populated by Viper settings
// (either from the local settings.yaml) and/or command line arguments.
func New() *Config {
	viper.SetDefault("workers", runtime.NumCPU())
	viper.SetDefault("barcode.head-margin", 3)
	viper.SetDefault("barcode.tail-window", 10)
	viper.SetDefault("demux.error-rate", 2)

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	if c.Workers < 1 {
		c.Workers = runtime.NumCPU()
	}

	return &c
}
