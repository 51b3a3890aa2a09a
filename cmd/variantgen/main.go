// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command variantgen generates monomorphic Optional and Result family
// types from a YAML manifest. It is meant to be run from go:generate:
//
//	//go:generate go run code.hybscloud.com/variant/cmd/variantgen -c variant.yaml
//
// Flags may also be given as VARIANTGEN_* environment variables.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"code.hybscloud.com/variant/internal/config"
	"code.hybscloud.com/variant/internal/familygen"
)

var rootCmd = &cobra.Command{
	Use:          "variantgen",
	Short:        "Generate monomorphic Optional and Result family types",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.InitConfiguration(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := setupLogger(config.GetLogLevel())
		defer logger.Sync()

		undo := zap.ReplaceGlobals(logger)
		defer undo()

		return run(logger)
	},
}

func init() {
	rootCmd.Flags().StringP("manifest", "c", "variant.yaml", "family manifest file")
	rootCmd.Flags().StringP("output", "o", "", "output file (overrides the manifest)")
	rootCmd.Flags().String("dir", "", "directory for package loading and output (default: manifest directory)")
	rootCmd.Flags().String("goarch", "", "architecture used for width checks (default: manifest goarch, then build target)")
	rootCmd.Flags().String("log-level", "info", "log level")
	rootCmd.Flags().Bool("stdout", false, "write generated source to stdout")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	manifestPath := config.GetManifest()
	m, err := familygen.LoadManifest(manifestPath)
	if err != nil {
		return err
	}
	if out := config.GetOutput(); out != "" {
		m.Output = out
	}

	dir := config.GetDir()
	if dir == "" {
		dir = filepath.Dir(manifestPath)
	}

	resolver, err := familygen.NewResolver(dir, m.Arch(config.GetGoArch()))
	if err != nil {
		return err
	}
	gen := familygen.New(logger, resolver)

	if config.GetStdout() {
		src, err := gen.Generate(m)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(src)
		return err
	}

	path, err := gen.WriteFile(m, dir)
	if err != nil {
		logger.Error("generation failed", zap.String("manifest", manifestPath), zap.Error(err))
		return err
	}
	logger.Debug("done", zap.String("file", path))
	return nil
}

func setupLogger(level string) *zap.Logger {
	loggerCfg := &zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	atomicLogLevel, err := zap.ParseAtomicLevel(level)
	if err == nil {
		loggerCfg.Level = atomicLogLevel
	}

	plain, err := loggerCfg.Build(zap.AddStacktrace(zap.DPanicLevel))
	if err != nil {
		panic(fmt.Sprintf("variantgen: building logger: %v", err))
	}
	return plain
}
