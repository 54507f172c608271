// FILE: cmd/demo/main.go

// Demo walks the facade lifecycle: initialize from environment/flags, emit
// at several levels, change the level at runtime, and shut down cleanly.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/logix-io/logix"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Exercise the logix dispatch pipeline",
		Long: "Initializes the log facade from LOG_* environment variables " +
			"(flags take precedence), emits records at several levels, " +
			"changes the level at runtime, and shuts down.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v)
		},
	}

	flags := cmd.Flags()
	flags.StringSlice("mode", nil, "sink modes: console, file, network, or none")
	flags.String("file-path", "", "active log file path")
	flags.Int64("file-size-mb", 0, "rotation threshold in MB")
	flags.Int64("max-log-files", 0, "retained file count")
	flags.String("network-ip", "", "UDP destination host")
	flags.Int64("network-port", 0, "UDP destination port")
	flags.String("level", "", "base log level")
	flags.String("pattern", "", "pattern template")
	flags.String("udp-format", "", "UDP wire format: json or plain")

	// Environment variables mirror the facade's own FromEnv names, so
	// LOG_MODE=console,file works with or without flags.
	v.SetEnvPrefix("LOG")
	_ = v.BindEnv("mode", logix.EnvMode)
	_ = v.BindEnv("file-path", logix.EnvFilePath)
	_ = v.BindEnv("file-size-mb", logix.EnvFileSizeMB)
	_ = v.BindEnv("max-log-files", logix.EnvMaxLogFiles)
	_ = v.BindEnv("network-ip", logix.EnvNetworkIP)
	_ = v.BindEnv("network-port", logix.EnvNetworkPort)
	_ = v.BindEnv("level", logix.EnvLevel)
	_ = v.BindEnv("pattern", logix.EnvPattern)
	_ = v.BindEnv("udp-format", logix.EnvUDPFormat)
	_ = v.BindPFlags(flags)

	return cmd
}

func run(v *viper.Viper) error {
	cfg := logix.DefaultConfig()
	if modes := v.GetStringSlice("mode"); len(modes) > 0 {
		cfg.Modes = modes
	} else {
		cfg.Modes = []string{logix.ModeNone}
	}
	cfg.FilePath = v.GetString("file-path")
	cfg.FileSizeMB = v.GetInt64("file-size-mb")
	cfg.MaxLogFiles = v.GetInt64("max-log-files")
	cfg.NetworkHost = v.GetString("network-ip")
	cfg.NetworkPort = v.GetInt64("network-port")
	if level := v.GetString("level"); level != "" {
		cfg.Level = level
	}
	if pattern := v.GetString("pattern"); pattern != "" {
		cfg.Pattern = pattern
	}
	if format := v.GetString("udp-format"); format != "" {
		cfg.UDPFormat = format
	}

	facade := logix.New()
	if err := facade.Initialize(cfg); err != nil {
		return err
	}

	logger, err := facade.GetLogger("demo")
	if err != nil {
		return err
	}

	logger.Info("Application started")
	logger.Debug("This debug message may not show if level is higher")

	// Change log level dynamically
	if err := facade.SetLogLevel(logix.LevelWarn); err != nil {
		return err
	}
	logger.Debug("This debug message should not appear")
	logger.Warn("This warning message should appear")

	// And back down
	if err := facade.SetLogLevel(logix.LevelTrace); err != nil {
		return err
	}
	logger.Trace("This trace message should now appear")

	return facade.Shutdown()
}
