// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "variantgen"}
	cmd.Flags().StringP("manifest", "c", "variant.yaml", "")
	cmd.Flags().StringP("output", "o", "", "")
	cmd.Flags().String("dir", "", "")
	cmd.Flags().String("goarch", "", "")
	cmd.Flags().String("log-level", "info", "")
	cmd.Flags().Bool("stdout", false, "")
	return cmd
}

func TestDefaults(t *testing.T) {
	cmd := newCommand()
	require.NoError(t, InitConfiguration(cmd))

	assert.Equal(t, "variant.yaml", GetManifest())
	assert.Equal(t, "", GetOutput())
	assert.Equal(t, "", GetGoArch(), "unset goarch defers to the manifest")
	assert.Equal(t, "info", GetLogLevel())
	assert.False(t, GetStdout())
}

func TestEnvironment(t *testing.T) {
	t.Setenv("VARIANTGEN_MANIFEST", "families.yaml")
	t.Setenv("VARIANTGEN_LOG_LEVEL", "debug")
	t.Setenv("VARIANTGEN_GOARCH", "386")

	cmd := newCommand()
	require.NoError(t, InitConfiguration(cmd))

	assert.Equal(t, "families.yaml", GetManifest())
	assert.Equal(t, "debug", GetLogLevel())
	assert.Equal(t, "386", GetGoArch())

	flag, err := cmd.Flags().GetString("log-level")
	require.NoError(t, err)
	assert.Equal(t, "debug", flag, "environment must be reflected in the flag")
}

func TestFlagsWinOverEnvironment(t *testing.T) {
	t.Setenv("VARIANTGEN_OUTPUT", "env.go")

	cmd := newCommand()
	require.NoError(t, cmd.Flags().Set("output", "flag.go"))
	require.NoError(t, cmd.Flags().Set("stdout", "true"))
	require.NoError(t, InitConfiguration(cmd))

	assert.Equal(t, "flag.go", GetOutput())
	assert.True(t, GetStdout())
}
