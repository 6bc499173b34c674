package main

import (
	"fmt"
	"io"
	"os"

	"github.com/saylorsolutions/xorlink/cmd/internal"
	"github.com/saylorsolutions/xorlink/pkg/hexcodec"
	"github.com/saylorsolutions/xorlink/pkg/serial"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

const (
	defaultFile = "encrypted.txt"
	defaultPort = "/dev/ttyUSB0"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		internal.Fatal(err, "xorsend failed")
	}
}

func run(args []string, stdout io.Writer) error {
	var (
		helpFlag     bool
		testFlag     bool
		truncateFlag bool
		fileFlag     string
		portFlag     string
		baudFlag     int
	)
	flags := flag.NewFlagSet("xorsend", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.StringVarP(&fileFlag, "file", "f", defaultFile, "File containing a single line of hex text to send.")
	flags.StringVarP(&portFlag, "port", "p", defaultPort, "Serial device to send to.")
	flags.IntVarP(&baudFlag, "baud", "b", serial.DefaultBaudRate, "Baud rate of the serial device. The line is always 8N1 with no flow control.")
	flags.BoolVarP(&testFlag, "test", "t", false, "Read the file and report the byte count without opening the device.")
	flags.BoolVar(&truncateFlag, "truncate-odd", false, "Drop a trailing lone hex character instead of failing.")
	logOpts := internal.AddLogFlags(flags)
	flags.Usage = func() {
		_, _ = fmt.Fprintf(stdout, `
xorsend %s
xorsend reads a line of hex text, as written by xorenc, and sends the decoded bytes to a serial device.
The device is put in raw mode, and xorsend waits for every byte to be transmitted before exiting.

USAGE:  xorsend [--file FILE] [--port PATH] [--test]

FLAGS:
%s`, version, flags.FlagUsages())
	}
	if err := flags.Parse(args); err != nil {
		flags.Usage()
		return fmt.Errorf("error parsing flags: %w", err)
	}
	if helpFlag {
		flags.Usage()
		return nil
	}
	if err := logOpts.Setup(); err != nil {
		return err
	}

	line, err := hexcodec.ReadLine(fileFlag)
	if err != nil {
		return err
	}
	internal.Echo(stdout, "Read %d bytes from %s", hexcodec.DecodedLen(len(line)), fileFlag)

	if testFlag {
		internal.Echo(stdout, "TEST MODE: Would send to %s", portFlag)
		return nil
	}

	var opts []hexcodec.DecodeOpt
	if truncateFlag {
		opts = append(opts, hexcodec.TruncateOddLength())
	}
	payload, err := hexcodec.Decode(line, opts...)
	if err != nil {
		return fmt.Errorf("'%s': %w", fileFlag, err)
	}

	log := logrus.WithFields(logrus.Fields{
		"port": portFlag,
		"baud": baudFlag,
	})
	var sent int
	err = serial.WithPort(portFlag, serial.Config{BaudRate: baudFlag}, func(port *serial.Port) error {
		log.WithField("bytes", len(payload)).Debug("Sending payload")
		var err error
		sent, err = serial.Send(port, payload)
		return err
	})
	if err != nil {
		return err
	}
	log.WithField("bytes", sent).Info("Payload sent and drained")
	internal.Echo(stdout, "Sent %d bytes to %s", sent, portFlag)
	return nil
}
