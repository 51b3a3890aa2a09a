// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	prefix = "VARIANTGEN"

	manifest = "manifest"
	output   = "output"
	dir      = "dir"
	goarch   = "goarch"
	logLevel = "log_level"
	stdout   = "stdout"

	defaultManifest = "variant.yaml"
	defaultLogLevel = "info"
)

var v = viper.New()

// InitConfiguration reads VARIANTGEN_* environment variables and binds
// them to the command's flags. Flags set on the command line win.
func InitConfiguration(cmd *cobra.Command) error {
	v = viper.New()
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()

	bindFlags(cmd, v)
	return nil
}

// bindFlags binds each cobra flag to its viper key and environment variable.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to
		// their equivalent keys with underscores.
		key := strings.ReplaceAll(f.Name, "-", "_")
		v.BindEnv(key, fmt.Sprintf("%s_%s", prefix, strings.ToUpper(key)))

		if !f.Changed && v.IsSet(key) {
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(key)))
		} else if f.Changed {
			v.Set(key, f.Value.String())
		}
	})
}

// GetManifest returns the manifest path.
func GetManifest() string {
	if !v.IsSet(manifest) {
		return defaultManifest
	}
	return v.GetString(manifest)
}

// GetOutput returns the output file override, or "" to use the manifest's.
func GetOutput() string {
	return v.GetString(output)
}

// GetDir returns the directory packages are loaded from and output is
// written to. Empty means the manifest's directory.
func GetDir() string {
	return v.GetString(dir)
}

// GetGoArch returns the architecture given by flag or environment, or
// empty to defer to the manifest.
func GetGoArch() string {
	return v.GetString(goarch)
}

// GetLogLevel returns the configured log level.
func GetLogLevel() string {
	if !v.IsSet(logLevel) {
		return defaultLogLevel
	}
	return v.GetString(logLevel)
}

// GetStdout reports whether generated source goes to stdout instead of a file.
func GetStdout() bool {
	return v.GetBool(stdout)
}
