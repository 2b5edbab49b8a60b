package probe

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the probe configuration.
type Config struct {
	Server                 string `mapstructure:"server"`
	KeyFile                string `mapstructure:"key_file"`
	Validity               string `mapstructure:"validity"`
	Timeout                string `mapstructure:"timeout"`
	ValidateTLSCertificate bool   `mapstructure:"validate_tls_certificate"`
	CheckExpired           bool   `mapstructure:"check_expired"`
}

func setDefaults(v *viper.Viper) {
	v.BindPFlag("server", pflag.Lookup("server"))
	v.BindPFlag("key_file", pflag.Lookup("key_file"))
	v.BindPFlag("validity", pflag.Lookup("validity"))
	v.BindPFlag("timeout", pflag.Lookup("timeout"))
	v.BindPFlag("check_expired", pflag.Lookup("check_expired"))
	v.SetDefault("server", "http://localhost:5050")
	v.SetDefault("key_file", "keys/private.pem")
	v.SetDefault("validity", "24h")
	v.SetDefault("timeout", "30s")
	v.SetDefault("validate_tls_certificate", true)
}

// ReadConfig reads the probe configuration from a file into a Config struct.
// A missing file is not an error: defaults and bound flags apply.
func ReadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("hcl")
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "unable to read config")
	}
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "unable to parse config")
	}
	p, err := homedir.Expand(c.KeyFile)
	if err != nil {
		return nil, err
	}
	c.KeyFile = p
	return c, nil
}
