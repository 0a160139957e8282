package store

import (
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the viewer's tunables. The gesture and cooldown values
// default to the compiled-in constants; a .drift file or DRIFT_* env
// vars may override them.
type Config interface {
	Endpoint() string
	Limit() int
	Cooldown() time.Duration
	WheelThreshold() float64
	SwipeRows() int
	ReducedMotion() bool
}

func LoadConfig() (Config, error) {
	viper.SetDefault("endpoint", "")
	viper.SetDefault("limit", 20)
	viper.SetDefault("cooldown", "700ms")
	viper.SetDefault("wheel-threshold", 60.0)
	viper.SetDefault("swipe-rows", 3)
	viper.SetDefault("reduced-motion", false)

	viper.SetConfigName(".drift") // .yaml is implicit
	viper.SetEnvPrefix("DRIFT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &fileConfig{
		endpoint:       viper.GetString("endpoint"),
		limit:          viper.GetInt("limit"),
		cooldown:       viper.GetDuration("cooldown"),
		wheelThreshold: viper.GetFloat64("wheel-threshold"),
		swipeRows:      viper.GetInt("swipe-rows"),
		reducedMotion:  viper.GetBool("reduced-motion"),
	}, nil
}

type fileConfig struct {
	endpoint       string
	limit          int
	cooldown       time.Duration
	wheelThreshold float64
	swipeRows      int
	reducedMotion  bool
}

func (f *fileConfig) Endpoint() string        { return f.endpoint }
func (f *fileConfig) Limit() int              { return f.limit }
func (f *fileConfig) Cooldown() time.Duration { return f.cooldown }
func (f *fileConfig) WheelThreshold() float64 { return f.wheelThreshold }
func (f *fileConfig) SwipeRows() int          { return f.swipeRows }
func (f *fileConfig) ReducedMotion() bool     { return f.reducedMotion }
