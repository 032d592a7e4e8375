package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gadgetsound/alsawatch"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	debounce time.Duration
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "alsawatch",
	Short: "Watch ALSA capture devices for activity and format changes",
	Long: `alsawatch observes the control elements of an ALSA capture endpoint
(a USB-gadget UAC2 device or an snd-aloop loopback) and reports when the
upstream source starts, stops, or renegotiates its wave format, so a
downstream audio pipeline can reconfigure itself without polling.

Devices are addressed as "card[,device[,subdevice]]", e.g. "Loopback,1".`,
}

var monitorCmd = &cobra.Command{
	Use:   "monitor <device>",
	Short: "Print device events until interrupted",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}

		listener, err := alsawatch.NewListener(alsawatch.ListenerConfig{
			Device:   args[0],
			Debounce: debounce,
			Logger:   &log,
		})
		if err != nil {
			return err
		}
		defer listener.Close()

		// report the state in effect before observation starts
		if active, err := listener.IsActive(); err == nil && active {
			format, _ := listener.ReadWaveFormat()
			fmt.Printf("device is active (%s)\n", format)
		} else if err == nil {
			fmt.Println("device is inactive")
		}

		listener.SetOnChange(func(ev alsawatch.DeviceEvent) {
			fmt.Printf("[%s] %s\n", time.Now().Format("15:04:05"), ev)
		})

		if err := listener.Start(); err != nil {
			return err
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		listener.Stop()
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status <device>",
	Short: "Show the device's current activity and wave format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}

		listener, err := alsawatch.NewListener(alsawatch.ListenerConfig{
			Device: args[0],
			Logger: &log,
		})
		if err != nil {
			return err
		}
		defer listener.Close()

		active, err := listener.IsActive()
		if err != nil {
			return err
		}
		format, err := listener.ReadWaveFormat()
		if err != nil {
			return err
		}

		if active {
			fmt.Printf("active (%s)\n", format)
		} else {
			fmt.Println("inactive")
		}
		return nil
	},
}

var controlsCmd = &cobra.Command{
	Use:   "controls <card>",
	Short: "List all control elements on a card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hctl, err := alsawatch.OpenHControl(args[0])
		if err != nil {
			return err
		}
		defer hctl.Close()

		elements, err := hctl.Elements()
		if err != nil {
			return err
		}

		for _, el := range elements {
			fmt.Printf("[%s:%d.%d] %-40s [%s]\n", el.Interface, el.Device, el.Subdevice, el.Name, el.Type)
		}
		fmt.Printf("\ntotal: %d controls\n", len(elements))
		return nil
	},
}

func newLogger() (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level '%s': %v", logLevel, err)
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger(), nil
}

func init() {
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(controlsCmd)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	monitorCmd.Flags().DurationVar(&debounce, "debounce", alsawatch.DefaultDebounce, "delay between a change notification and the state read")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
