package store

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/DimaFrost/glass-cal/pkg/event"
)

// Config carries user preferences consumed at store construction and by the
// UI layers.
type Config interface {
	DefaultView() event.ViewType
	WeekNumbers() bool
}

// LoadConfig reads the .glasscal config file (home directory, then cwd),
// with GLASSCAL_* environment overrides. A missing config file is fine;
// defaults apply.
func LoadConfig() (Config, error) {
	viper.SetDefault("view", string(event.ViewMonth))
	viper.SetDefault("week-numbers", false)
	viper.SetConfigName(".glasscal") // .yaml is implicit
	viper.SetEnvPrefix("GLASSCAL")
	viper.AutomaticEnv()

	if override := os.Getenv("GLASSCAL_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	view, err := event.ParseViewType(viper.GetString("view"))
	if err != nil {
		// Unknown values fall back to the month view rather than failing
		// startup.
		view = event.ViewMonth
	}
	return &fileConfig{View: view, ShowWeekNumbers: viper.GetBool("week-numbers")}, nil
}

type fileConfig struct {
	View            event.ViewType `json:"view"`
	ShowWeekNumbers bool           `json:"week-numbers"`
}

func (f *fileConfig) DefaultView() event.ViewType {
	return f.View
}

func (f *fileConfig) WeekNumbers() bool {
	return f.ShowWeekNumbers
}
