package startup

import (
	"io"

	"github.com/fleetci/fleetci/pkg/configuration"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

func Load(reader io.Reader) (*configuration.Configuration, error) {
	configObj := configuration.NewConfig()

	v := viper.New()
	v.SetConfigType("yaml")

	err := v.ReadConfig(reader)

	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(configObj)

	if err != nil {
		return nil, err
	}

	err = validator.New().Struct(configObj)

	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return configObj, nil
}
