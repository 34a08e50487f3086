package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/buswatch/buslights/internal/protocol"
	"github.com/buswatch/buslights/internal/transport"
)

var (
	serialDevice string
	serialBaud   int
	addr         string
)

func main() {
	root := &cobra.Command{
		Use:   "sendcmd",
		Short: "Send one strand controller command",
		Long: `Resolves a human-readable shift, event or setting name to its wire bytes ` +
			`and writes them to the controller's serial device or TCP command port.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&serialDevice, "serial", "", "serial device (e.g. /dev/ttyUSB0)")
	root.PersistentFlags().IntVar(&serialBaud, "baud", 9600, "serial baud rate")
	root.PersistentFlags().StringVar(&addr, "addr", ":9290", "TCP command address, used when --serial is empty")

	root.AddCommand(idleCmd(), eventCmd(), stopCmd(), configCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func send(cmd protocol.Command) error {
	sink, err := transport.OpenSink(serialDevice, serialBaud, addr)
	if err != nil {
		return fmt.Errorf("open command link: %w", err)
	}
	defer sink.Close()
	if _, err := sink.Write(cmd.Encode()); err != nil {
		return fmt.Errorf("write command: %w", err)
	}
	return nil
}

func idleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "idle [shift]",
		Short: "Set the idle shift pattern",
		Long:  `Shifts: dawnguard, alphaflight, nightwatch, zetashift, omegashift.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, ok := protocol.ParseShift(args[0])
			if !ok {
				return fmt.Errorf("unknown shift %q", args[0])
			}
			return send(protocol.Command{Kind: protocol.CmdSetIdle, Shift: s})
		},
	}
}

func eventCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "event [name]",
		Short: "Start an event animation",
		Long:  `Events: point, crash, busstop, bugsplat. The animation loops until "sendcmd stop".`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			e, ok := protocol.ParseEvent(args[0])
			if !ok {
				return fmt.Errorf("unknown event %q", args[0])
			}
			return send(protocol.Command{Kind: protocol.CmdStartEvent, Event: e})
		},
	}
}

func stopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running event animation",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return send(protocol.Command{Kind: protocol.CmdStopEvent})
		},
	}
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [key] [value]",
		Short: "Update a controller setting",
		Long:  `Keys: idle-type (values: off, static, slow, fast).`,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if args[0] != "idle-type" {
				return fmt.Errorf("unknown setting %q", args[0])
			}
			v, ok := protocol.ParseIdleType(args[1])
			if !ok {
				return fmt.Errorf("unknown idle type %q", args[1])
			}
			return send(protocol.Command{Kind: protocol.CmdUpdateConfig, Key: protocol.KeyIdleType, Value: v})
		},
	}
}
