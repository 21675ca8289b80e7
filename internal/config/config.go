package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Dictionaries DictionariesConfig `mapstructure:"dictionaries"`
	Templates    TemplatesConfig    `mapstructure:"templates"`
	Outputs      OutputsConfig      `mapstructure:"outputs"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DictionariesConfig struct {
	FreeDictionary FreeDictionaryConfig `mapstructure:"free_dictionary"`
}

type FreeDictionaryConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	// Timeout of one lookup. Zero leaves the transport default.
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

type TemplatesConfig struct {
	PageTemplate     string `mapstructure:"page_template" validate:"omitempty,file"`
	MarkdownTemplate string `mapstructure:"markdown_template" validate:"omitempty,file"`
}

type OutputsConfig struct {
	AudioDirectory  string `mapstructure:"audio_directory"`
	ExportDirectory string `mapstructure:"export_directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordlens")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("dictionaries.free_dictionary.base_url", "https://api.dictionaryapi.dev/api/v2/entries/en")
	v.SetDefault("dictionaries.free_dictionary.timeout", 10*time.Second)
	// Templates are optional - if not specified, the embedded ones are used
	v.SetDefault("templates.page_template", "")
	v.SetDefault("templates.markdown_template", "")
	v.SetDefault("outputs.audio_directory", filepath.Join("outputs", "audio"))
	v.SetDefault("outputs.export_directory", filepath.Join("outputs", "export"))

	if err := v.BindEnv("dictionaries.free_dictionary.base_url", "FREE_DICTIONARY_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind FREE_DICTIONARY_BASE_URL environment variable: %w", err)
	}
	if err := v.BindEnv("server.port", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind PORT environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
