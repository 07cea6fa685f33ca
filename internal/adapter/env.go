package adapter

import (
	"strings"

	"github.com/spf13/viper"
)

var envKeyReplacer = strings.NewReplacer(".", "_")

// configKeys lists every key so AutomaticEnv can see them during Unmarshal
var configKeys = []string{
	"api.base_url",
	"api.timeout",
	"storage.path",
	"opener.command",
	"opener.args",
	"ui.skeleton_rows",
	"logging.file",
	"logging.level",
}

func bindEnvKeys(v *viper.Viper) {
	for _, k := range configKeys {
		_ = v.BindEnv(k)
	}
}
