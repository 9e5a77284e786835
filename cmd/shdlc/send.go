package main

import (
	"encoding/hex"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tmorrel/shdlc-go/frame"
	"github.com/tmorrel/shdlc-go/port"
)

var (
	device  string
	baud    int
	addr    uint8
	command uint8
)

var sendCmd = &cobra.Command{
	Use:   "send [hex data]",
	Short: "Issue one command to a device and print its response",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSend,
}

func init() {
	sendCmd.Flags().StringVarP(&device, "device", "d", "/dev/ttyUSB0", "serial device")
	sendCmd.Flags().IntVarP(&baud, "baud", "b", 115200, "baud rate")
	sendCmd.Flags().Uint8VarP(&addr, "addr", "a", 0, "device address")
	sendCmd.Flags().Uint8VarP(&command, "cmd", "c", 0, "command ID")
}

func runSend(cmd *cobra.Command, args []string) error {
	var data []byte
	if len(args) == 1 {
		var err error
		data, err = hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("parse hex data: %w", err)
		}
	}

	conn, err := port.Open(device, baud)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.Send(frame.Command{Addr: addr, ID: command, Data: data}); err != nil {
		return fmt.Errorf("send command %#02x: %w", command, err)
	}
	resp, err := conn.Receive()
	if err != nil {
		return fmt.Errorf("receive response: %w", err)
	}

	if !resp.Ok() {
		log.Warnf("device reported state %#02x", resp.State)
	}
	fmt.Printf("state=%#02x data=%s\n", resp.State, hex.EncodeToString(resp.Data))
	return nil
}
