// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"strings"
	"time"

	"github.com/brokiem/mpc-discordrpc/constant"
	"github.com/brokiem/mpc-discordrpc/filesystem"
	"github.com/brokiem/mpc-discordrpc/key"
	"github.com/brokiem/mpc-discordrpc/title"
	"github.com/brokiem/mpc-discordrpc/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// Options is a snapshot of the settings the presence pipeline runs with.
type Options struct {
	MalClientID string
	Title       title.Options

	PresenceClientID  string
	ShowRemainingTime bool
	DetailsPrefix     string

	PollURL      string
	PollInterval time.Duration

	CoverTimeout time.Duration
	CoverCache   bool
}

// Load reads the current configuration into Options. It is called once at startup.
func Load() Options {
	return Options{
		MalClientID: viper.GetString(key.MalClientID),
		Title: title.Options{
			StripUnderscores:   viper.GetBool(key.TitleReplaceUnderscore),
			StripBrackets:      viper.GetBool(key.TitleIgnoreBrackets),
			StripDots:          viper.GetBool(key.TitleReplaceDots),
			StripFileExtension: viper.GetBool(key.TitleIgnoreFiletype),
		},
		PresenceClientID:  viper.GetString(key.PresenceClientID),
		ShowRemainingTime: viper.GetBool(key.PresenceShowRemainingTime),
		DetailsPrefix:     viper.GetString(key.PresenceDetailsPrefix),
		PollURL:           viper.GetString(key.PollURL),
		PollInterval:      milliseconds(key.PollInterval),
		CoverTimeout:      milliseconds(key.CoverTimeout),
		CoverCache:        viper.GetBool(key.CoverCache),
	}
}

func milliseconds(k string) time.Duration {
	return time.Duration(viper.GetInt(k)) * time.Millisecond
}
