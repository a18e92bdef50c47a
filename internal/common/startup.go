package common

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	commonconfig "github.com/armadaproject/datacenter/internal/common/config"
)

const envPrefix = "DATACENTER"

// BindCommandlineArguments makes flags defined on fs available through v under their own names.
// Flags that were set explicitly take precedence over config files and the environment.
func BindCommandlineArguments(v *viper.Viper, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	if err := v.BindPFlags(fs); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// LoadConfig populates config from config.yaml in defaultPath, then merges in each of userSpecifiedConfigs in turn.
// Environment variables prefixed with DATACENTER_ override values from files,
// e.g. DATACENTER_LOGGING_LEVEL for logging.level.
func LoadConfig(config interface{}, defaultPath string, userSpecifiedConfigs []string, flags *pflag.FlagSet) error {
	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(defaultPath)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.WithMessagef(err, "failed to read default config from %s", defaultPath)
		}
		log.Debugf("No default config found in %s", defaultPath)
	}

	for _, path := range userSpecifiedConfigs {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return errors.WithMessagef(err, "failed to merge config from %s", path)
		}
		log.Infof("Read config from %s", path)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := BindCommandlineArguments(v, flags); err != nil {
		return err
	}

	if err := v.Unmarshal(config, commonconfig.CustomHooks...); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func ConfigureLogging() {
	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: true})
	log.SetOutput(os.Stdout)
}
