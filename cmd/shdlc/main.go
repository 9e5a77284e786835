// shdlc is a small utility for working with SHDLC byte-stuffed frames: it
// encodes and decodes hex-formatted frames, and can issue a single command
// to a device on a serial port.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbosity = 0

var rootCmd = &cobra.Command{
	Use:              "shdlc",
	Short:            "Work with SHDLC byte-stuffed frames",
	PersistentPreRun: logging,
}

func main() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "how verbose to be, can use multiple")
	rootCmd.AddCommand(encodeCmd, decodeCmd, sendCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func logging(cmd *cobra.Command, args []string) {
	log.SetOutput(os.Stderr)
	switch verbosity {
	case 0:
		log.SetLevel(log.WarnLevel)
	case 1:
		log.SetLevel(log.InfoLevel)
	default: // 2+
		log.SetLevel(log.DebugLevel)
	}
}
