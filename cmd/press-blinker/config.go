package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultButtonPin = "GPIO2"
	defaultLedPin    = "GPIO10"
)

type Config struct {
	Button struct {
		Pin string `yaml:"pin"`
	} `yaml:"button"`
	Led struct {
		Pin string `yaml:"pin"`
	} `yaml:"led"`
}

func readConfig(file string) (*Config, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("No config file at %v, using defaults", file)
			return parseConfig(nil)
		}
		return nil, err
	}
	return parseConfig(content)
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	if c.Button.Pin == "" {
		c.Button.Pin = defaultButtonPin
	}
	if c.Led.Pin == "" {
		c.Led.Pin = defaultLedPin
	}
	if c.Button.Pin == c.Led.Pin {
		return nil, fmt.Errorf("button and LED cannot share pin %v", c.Led.Pin)
	}

	return c, nil
}
