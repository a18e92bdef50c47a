package config

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var CustomHooks = []viper.DecoderConfigOption{
	viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		LogLevelDecodeHook(),
		mapstructure.StringToSliceHookFunc(","),
	)),
}

// LogLevelDecodeHook parses strings such as "debug" or "WARN" into a logrus.Level.
func LogLevelDecodeHook() mapstructure.DecodeHookFuncType {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		// check that src and target types are valid
		if f.Kind() != reflect.String || t != reflect.TypeOf(logrus.InfoLevel) {
			return data, nil
		}
		return logrus.ParseLevel(data.(string))
	}
}
