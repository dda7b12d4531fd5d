package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/zabeloliver/room-monitor/roomApi/roomClient"
)

type config struct {
	// Source is the file the settings came from, empty for defaults only.
	Source string `mapstructure:"-"`

	Mode string `mapstructure:"mode"`
	Api  struct {
		BaseUrl string `mapstructure:"baseurl"`
		Timeout int    `mapstructure:"timeout"`
	} `mapstructure:"api"`
	Log struct {
		File   string `mapstructure:"file"`
		Stdout bool   `mapstructure:"stdout"`
		Level  string `mapstructure:"level"`
	} `mapstructure:"log"`
	Layout struct {
		Tablet bool `mapstructure:"tablet"`
		Images bool `mapstructure:"images"`
	} `mapstructure:"layout"`
	Images struct {
		Catalogue string `mapstructure:"catalogue"`
	} `mapstructure:"images"`
	Web struct {
		Port       int `mapstructure:"port"`
		SessionTtl int `mapstructure:"sessionttl"`
	} `mapstructure:"web"`
	Metrics struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"metrics"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "shell")
	v.SetDefault("api.baseurl", roomClient.DefaultBaseUrl)
	v.SetDefault("api.timeout", 0)
	v.SetDefault("log.file", "room_monitor.log")
	v.SetDefault("log.stdout", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("layout.tablet", false)
	v.SetDefault("layout.images", true)
	v.SetDefault("images.catalogue", "")
	v.SetDefault("web.port", 8080)
	v.SetDefault("web.sessionttl", 3600)
	v.SetDefault("metrics.port", 9123)
}

// loadConfig layers defaults, the YAML file at path, ROOM_* environment
// variables and a non-empty mode flag. A missing file is not an error.
func loadConfig(path string, mode string) (*config, error) {
	v := viper.New()
	setDefaults(v)
	replacer := strings.NewReplacer(".", "_")
	v.SetEnvKeyReplacer(replacer)
	v.SetEnvPrefix("room")
	v.AutomaticEnv()
	v.SetConfigType("yaml")

	source := ""
	raw, err := os.ReadFile(path)
	if err == nil {
		if err := v.ReadConfig(bytes.NewBuffer(raw)); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		source = path
	}
	if mode != "" {
		v.Set("mode", mode)
	}

	var c config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if c.Mode != "shell" && c.Mode != "serve" {
		return nil, fmt.Errorf("unknown mode %q, want shell or serve", c.Mode)
	}
	c.Source = source
	return &c, nil
}

// logOutputs picks the zap output paths. Serve mode logs to stdout as well,
// the shell keeps stdout for itself unless asked.
func (c *config) logOutputs() []string {
	var outputs []string
	if c.Log.Stdout || c.Mode == "serve" {
		outputs = append(outputs, "stdout")
	}
	if c.Log.File != "" {
		outputs = append(outputs, c.Log.File)
	}
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}
	return outputs
}
