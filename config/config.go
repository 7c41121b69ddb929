package config

import (
	"os"
	"fmt"
	"errors"
	"gopkg.in/yaml.v3"

	"imgstegno/util"
	"imgstegno/stegano/img"
)

var ErrInvalidConfig = errors.New("invalid configuration")

/*
 * Configuration for steganography: the lossless format used when the
 * requested output can't hold the hidden bits, and whether the key is
 * typed without echo on a terminal.
 */
type SteganoConfig struct {
	OutputFormat	string		`yaml:"output_format"`
	HideKeyInput	bool		`yaml:"hide_key_input"`
}

type FullConfig struct {
	StegConfig	SteganoConfig		`yaml:"steganography_config"`
	Logger		util.LoggerInfo		`yaml:"logger_config"`
	DefaultKey	int			`yaml:"default_key"`	// used when the key prompt is left empty
}

func DefaultConfig() *FullConfig {
	return &FullConfig{
		StegConfig: SteganoConfig{
			OutputFormat: img.PNG,
			HideKeyInput: false,
		},
		Logger: util.LoggerInfo{
			Filename: "",
			IsColored: true,
			SaveTime: false,
			Mode: util.Error | util.Warning,
		},
		DefaultKey: 0,
	}
}

func(c *FullConfig) Validate() error {
	if !img.IsLossless( c.StegConfig.OutputFormat ) {
		return fmt.Errorf("%w: output format %q is not lossless", ErrInvalidConfig,
			c.StegConfig.OutputFormat)
	}
	if c.Logger.Mode & ^uint8(util.Error | util.Warning | util.Info) != 0 {
		return fmt.Errorf("%w: unknown logger mode %d", ErrInvalidConfig, c.Logger.Mode)
	}
	return nil
}

/*
 * Functions for loading and saving configuration in YAML format.
 * Missing fields keep their default values.
 */
func LoadConfig( filename string ) (*FullConfig, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}

	conf := DefaultConfig()
	if err := yaml.Unmarshal( data, conf ); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, err.Error())
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func SaveConfig( filename string, c *FullConfig ) error {
	data, err := yaml.Marshal( c )
	if err != nil {
		return err
	}
	return os.WriteFile( filename, data, 0600 )
}

// CheckConfig is suitable for util.EditConfig.
func CheckConfig( filename string ) error {
	_, err := LoadConfig( filename )
	return err
}
