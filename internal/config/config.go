package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type env struct {
	StrandLength uint   `mapstructure:"STRAND_LENGTH"`
	Brightness   uint   `mapstructure:"BRIGHTNESS"`
	FrameRate    uint   `mapstructure:"FRAME_RATE"`
	Port         uint   `mapstructure:"PORT"`
	SerialDevice string `mapstructure:"SERIAL_DEVICE"`
	SerialBaud   int    `mapstructure:"SERIAL_BAUD"`
	CommandAddr  string `mapstructure:"COMMAND_ADDR"`
	StatsURL     string `mapstructure:"STATS_URL"`
	PollInterval uint   `mapstructure:"POLL_INTERVAL"`
	EventHold    uint   `mapstructure:"EVENT_HOLD"`
	IdleType     string `mapstructure:"IDLE_TYPE"`
}

type Config struct {
	env *env
}

var cfgInstance *Config

func NewConfig() *Config {
	if cfgInstance != nil {
		return cfgInstance
	}

	viper.AddConfigPath(".")
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Sprintf("error loading config: %s", err))
	}

	var env env
	err = viper.Unmarshal(&env)
	if err != nil {
		panic(fmt.Sprintf("error unmarshaling config: %s", err))
	}
	cfgInstance = &Config{&env}
	return cfgInstance
}

func (c *Config) StrandLength() uint {
	return c.env.StrandLength
}

func (c *Config) Brightness() uint8 {
	if c.env.Brightness > 255 {
		return 255
	}
	return uint8(c.env.Brightness)
}

func (c *Config) FrameRate() uint {
	return c.env.FrameRate
}

func (c *Config) Port() uint {
	return c.env.Port
}

func (c *Config) SerialDevice() string {
	return c.env.SerialDevice
}

func (c *Config) SerialBaud() int {
	return c.env.SerialBaud
}

func (c *Config) CommandAddr() string {
	return c.env.CommandAddr
}

func (c *Config) StatsURL() string {
	return c.env.StatsURL
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.env.PollInterval) * time.Second
}

func (c *Config) EventHold() time.Duration {
	return time.Duration(c.env.EventHold) * time.Second
}

func (c *Config) IdleType() string {
	return c.env.IdleType
}
