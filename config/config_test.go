// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNew_defaults(t *testing.T) {
	viper.Reset()

	c := New()

	if c.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", c.Workers)
	}
	if c.Barcode.HeadMargin != 3 {
		t.Errorf("Barcode.HeadMargin = %d, want 3", c.Barcode.HeadMargin)
	}
	if c.Barcode.TailWindow != 10 {
		t.Errorf("Barcode.TailWindow = %d, want 10", c.Barcode.TailWindow)
	}
	if c.Demux.ErrorRate != 2 {
		t.Errorf("Demux.ErrorRate = %v, want 2", c.Demux.ErrorRate)
	}
}

func TestNew_overrides(t *testing.T) {
	viper.Reset()
	viper.Set("workers", 2)
	viper.Set("barcode.head-margin", 5)
	defer viper.Reset()

	c := New()

	if c.Workers != 2 {
		t.Errorf("Workers = %d, want 2", c.Workers)
	}
	if c.Barcode.HeadMargin != 5 {
		t.Errorf("Barcode.HeadMargin = %d, want 5", c.Barcode.HeadMargin)
	}
	// untouched settings keep their defaults
	if c.Barcode.TailWindow != 10 {
		t.Errorf("Barcode.TailWindow = %d, want 10", c.Barcode.TailWindow)
	}
}
