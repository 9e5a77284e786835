package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmorrel/shdlc-go/shdlc"
)

var capacity int

var encodeCmd = &cobra.Command{
	Use:   "encode [hex payload]",
	Short: "Escape a payload and frame it with boundary markers",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload, err := hexInput(args)
		if err != nil {
			return err
		}
		encoded, err := shdlc.Encode(payload, capacity)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(encoded))
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [hex frame]",
	Short: "Strip the boundary markers from a frame and unescape it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		encoded, err := hexInput(args)
		if err != nil {
			return err
		}
		decoded, err := shdlc.Decode(encoded, capacity)
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(decoded))
		return nil
	},
}

func init() {
	encodeCmd.Flags().IntVar(&capacity, "capacity", 1024, "maximum output size in bytes")
	decodeCmd.Flags().IntVar(&capacity, "capacity", 1024, "maximum output size in bytes")
}

// hexInput parses the single hex argument, or reads one hex line from stdin
// when no argument is given.  Spaces are allowed between byte pairs.
func hexInput(args []string) ([]byte, error) {
	var in string
	if len(args) == 1 {
		in = args[0]
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		in = line
	}
	in = strings.Join(strings.Fields(in), "")
	b, err := hex.DecodeString(in)
	if err != nil {
		return nil, fmt.Errorf("parse hex input: %w", err)
	}
	return b, nil
}
