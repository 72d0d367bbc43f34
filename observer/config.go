// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package observer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"code.hybscloud.com/transduce"
)

// ConfigKey is the viper key [LoadConfig] reads.
const ConfigKey = "transduce.debug"

// Sink names.
const (
	SinkDiscard = "discard"
	SinkZerolog = "zerolog"
	SinkZap     = "zap"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config selects and configures a sink.
type Config struct {
	Sink      string `yaml:"sink" mapstructure:"sink" validate:"oneof=discard zerolog zap"`
	Level     string `yaml:"level" mapstructure:"level" validate:"oneof=debug info warn error"`
	Format    string `yaml:"format" mapstructure:"format" validate:"oneof=json console"`
	Correlate bool   `yaml:"correlate" mapstructure:"correlate"`
}

// ApplyDefaults fills unset fields: discard sink, debug level, json format.
func (c *Config) ApplyDefaults() {
	if c.Sink == "" {
		c.Sink = SinkDiscard
	}
	if c.Level == "" {
		c.Level = "debug"
	}
	if c.Format == "" {
		c.Format = FormatJSON
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate reports every field holding an unknown value.
func (c Config) Validate() error {
	err := getValidator().Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%s: %w", ConfigKey, err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s.%s must be one of [%s] (got: %v)",
			ConfigKey, strings.ToLower(fe.Field()), fe.Param(), fe.Value()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// LoadConfig reads the [ConfigKey] section of v, applies defaults and
// validates the result.
func LoadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.UnmarshalKey(ConfigKey, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal %s: %w", ConfigKey, err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// New builds the sink cfg describes, writing to w. A nil w is os.Stderr.
func New(cfg Config, w io.Writer) (transduce.Observer, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}

	var obs transduce.Observer
	switch cfg.Sink {
	case SinkZerolog:
		level, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("%s.level: %w", ConfigKey, err)
		}
		out := w
		if cfg.Format == FormatConsole {
			out = zerolog.ConsoleWriter{Out: w, NoColor: true}
		}
		obs = Zerolog(zerolog.New(out).With().Timestamp().Logger(), level)
	case SinkZap:
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("%s.level: %w", ConfigKey, err)
		}
		encCfg := zap.NewProductionEncoderConfig()
		var enc zapcore.Encoder
		if cfg.Format == FormatConsole {
			enc = zapcore.NewConsoleEncoder(encCfg)
		} else {
			enc = zapcore.NewJSONEncoder(encCfg)
		}
		core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)
		obs = Zap(zap.New(core), level)
	default:
		obs = transduce.Discard
	}

	if cfg.Correlate {
		obs = Correlated(obs)
	}
	return obs, nil
}
