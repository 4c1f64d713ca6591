package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/Spok95/materials-catalog/internal/domain/materials"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	Telegram struct {
		Token   string
		Timeout int
	} `mapstructure:"telegram"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Postgres struct {
		DSN string
	} `mapstructure:"postgres"`

	Storage struct {
		Driver string // postgres | memory
	} `mapstructure:"storage"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Display struct {
		Currency string
	} `mapstructure:"display"`

	Yield struct {
		Multiplier float64
		LossRate   float64 `mapstructure:"loss_rate"`
	} `mapstructure:"yield"`
}

// YieldModel — коэффициенты оценки выхода продукции из конфигурации.
func (c Config) YieldModel() materials.YieldModel {
	return materials.YieldModel{Multiplier: c.Yield.Multiplier, LossRate: c.Yield.LossRate}
}

func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	// APP_POSTGRES_DSN и т.п. перекрывают файл
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.env", "prod")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("telegram.timeout", 60)
	v.SetDefault("display.currency", "р")
	v.SetDefault("yield.multiplier", materials.DefaultYield.Multiplier)
	v.SetDefault("yield.loss_rate", materials.DefaultYield.LossRate)

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return c, err
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
