package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tevclient/tevclient"
	"github.com/tevclient/tevclient/internal/logging"
)

// driverFlags are shared endpoint settings resolved per invocation from an
// optional TOML config file overlaid by command-line flags.
type driverFlags struct {
	configPath string
	host       string
	port       uint16
	noFocus    bool
}

func main() {
	logging.ConfigureRuntime()

	flags := &driverFlags{}
	rootCmd := &cobra.Command{
		Use:   "tevctl",
		Short: "Drive a running tev image viewer",
		Long: `tevctl sends control commands to a running tev image viewer:
open, reload, and close images, create and fill synthetic test images,
and overlay vector graphics.

The viewer endpoint defaults to 127.0.0.1:14158 and can be set through
a TOML config file (--config) or the --host/--port flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to TOML config file")
	rootCmd.PersistentFlags().StringVar(&flags.host, "host", "", "Viewer hostname")
	rootCmd.PersistentFlags().Uint16Var(&flags.port, "port", 0, "Viewer port")
	rootCmd.PersistentFlags().BoolVar(&flags.noFocus, "no-focus", false, "Do not bring affected images to the foreground")

	rootCmd.AddCommand(
		openCmd(flags),
		reloadCmd(flags),
		closeCmd(flags),
		createCmd(flags),
		gradientCmd(flags),
		checkerboardCmd(flags),
		vgCmd(flags),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// newClient builds a connected client from config file plus flag overrides.
func newClient(flags *driverFlags) (*tevclient.Client, error) {
	cfg := tevclient.DefaultConfig()
	if flags.configPath != "" {
		loaded, err := tevclient.LoadConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if flags.host != "" {
		cfg.Host = flags.host
	}
	if flags.port != 0 {
		cfg.Port = flags.port
	}

	log := logging.New("tevctl")
	opts := cfg.Options()
	opts.Logger = &log

	client, err := tevclient.NewClient(cfg.Host, cfg.Port, opts)
	if err != nil {
		return nil, err
	}
	if err := client.Connect(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

// run opens a client, executes fn, and tears the connection down again.
func run(flags *driverFlags, fn func(client *tevclient.Client) error) error {
	client, err := newClient(flags)
	if err != nil {
		return err
	}
	defer client.Close()
	return fn(client)
}
