package main

import (
	"github.com/spf13/cobra"

	"github.com/tevclient/tevclient"
)

func openCmd(flags *driverFlags) *cobra.Command {
	var channelSelector string

	cmd := &cobra.Command{
		Use:   "open <path>",
		Short: "Open an image from a path visible to the viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags, func(client *tevclient.Client) error {
				return client.OpenImage(args[0], channelSelector, !flags.noFocus)
			})
		},
	}

	cmd.Flags().StringVar(&channelSelector, "channels", "", "Channel selector, empty for all")

	return cmd
}

func reloadCmd(flags *driverFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "reload <name>",
		Short: "Reload a previously opened image from disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags, func(client *tevclient.Client) error {
				return client.ReloadImage(args[0], !flags.noFocus)
			})
		},
	}
}

func closeCmd(flags *driverFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "close <name>",
		Short: "Close an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags, func(client *tevclient.Client) error {
				return client.CloseImage(args[0], !flags.noFocus)
			})
		},
	}
}

func createCmd(flags *driverFlags) *cobra.Command {
	var (
		width    uint32
		height   uint32
		channels uint32
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new empty image in the viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags, func(client *tevclient.Client) error {
				return client.CreateImage(args[0], width, height, channels, nil, !flags.noFocus)
			})
		},
	}

	cmd.Flags().Uint32Var(&width, "width", 512, "Image width in pixels")
	cmd.Flags().Uint32Var(&height, "height", 512, "Image height in pixels")
	cmd.Flags().Uint32Var(&channels, "channels", 3, "Channel count (1-4)")

	return cmd
}

func gradientCmd(flags *driverFlags) *cobra.Command {
	var (
		width  uint32
		height uint32
	)

	cmd := &cobra.Command{
		Use:   "gradient <name>",
		Short: "Create and fill a UV gradient test image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags, func(client *tevclient.Client) error {
				data := uvGradient(width, height)
				return client.CreateImageData(args[0], width, height, 3, data, !flags.noFocus)
			})
		},
	}

	cmd.Flags().Uint32Var(&width, "width", 512, "Image width in pixels")
	cmd.Flags().Uint32Var(&height, "height", 128, "Image height in pixels")

	return cmd
}

func checkerboardCmd(flags *driverFlags) *cobra.Command {
	var (
		width  uint32
		height uint32
	)

	cmd := &cobra.Command{
		Use:   "checkerboard <name>",
		Short: "Create and fill a checkerboard test image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags, func(client *tevclient.Client) error {
				data := checkerboard(width, height)
				return client.CreateImageData(args[0], width, height, 1, data, !flags.noFocus)
			})
		},
	}

	cmd.Flags().Uint32Var(&width, "width", 128, "Image width in pixels")
	cmd.Flags().Uint32Var(&height, "height", 128, "Image height in pixels")

	return cmd
}

func vgCmd(flags *driverFlags) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "vg <name>",
		Short: "Overlay demo vector graphics on an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(flags, func(client *tevclient.Client) error {
				return client.VectorGraphics(args[0], demoOverlay(), !replace, !flags.noFocus)
			})
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Replace existing overlay instead of appending")

	return cmd
}

// demoOverlay outlines a rounded viewport marker with a center dot.
func demoOverlay() []tevclient.VgCommand {
	return []tevclient.VgCommand{
		tevclient.Save(),
		tevclient.BeginPath(),
		tevclient.RoundedRect(tevclient.Pos{X: 16, Y: 16}, tevclient.Size{Width: 96, Height: 96}, 8),
		tevclient.StrokeColor(tevclient.Color{R: 1, G: 0.8, A: 1}),
		tevclient.Stroke(),
		tevclient.BeginPath(),
		tevclient.Circle(tevclient.Pos{X: 64, Y: 64}, 4),
		tevclient.FillColor(tevclient.Color{R: 1, A: 1}),
		tevclient.Fill(),
		tevclient.Restore(),
	}
}
