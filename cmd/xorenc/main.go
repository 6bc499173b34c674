package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/saylorsolutions/xorlink/cmd/internal"
	"github.com/saylorsolutions/xorlink/pkg/hexcodec"
	"github.com/saylorsolutions/xorlink/pkg/xor"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
)

const (
	defaultInput  = "piApp/secret.txt"
	defaultOutput = "piApp/encrypted.txt"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		internal.Fatal(err, "xorenc failed")
	}
}

func run(args []string, stdout io.Writer) error {
	var (
		helpFlag     bool
		decodeFlag   bool
		truncateFlag bool
		inputFlag    string
		outputFlag   string
		keyFlag      string
	)
	flags := flag.NewFlagSet("xorenc", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.StringVarP(&inputFlag, "input", "i", defaultInput, "File to read.")
	flags.StringVarP(&outputFlag, "output", "o", defaultOutput, "File to write, it will be truncated if it exists.")
	flags.StringVarP(&keyFlag, "key", "k", xor.FixedKeyName, fmt.Sprintf("Key to screen with, either '%s' or '%s'.", xor.FixedKeyName, xor.DigestKeyName))
	flags.BoolVarP(&decodeFlag, "decode", "d", false, "Reverse the process, reading a hex line from the input and writing the original bytes to the output.")
	flags.BoolVar(&truncateFlag, "truncate-odd", false, "When decoding, drop a trailing lone hex character instead of failing.")
	logOpts := internal.AddLogFlags(flags)
	flags.Usage = func() {
		_, _ = fmt.Fprintf(stdout, `
xorenc %s
xorenc screens a file with a repeating XOR key and writes the result as a single line of lowercase hex text.
The output is intended to be sent to a device with xorsend.

USAGE:  xorenc [--input FILE] [--output FILE]

FLAGS:
%s
SECURITY:
    This is not encryption, this is obfuscation!
The key is built into this program, so anyone with a copy of it can reverse the output.
`, version, flags.FlagUsages())
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

	key, err := xor.KeyByName(keyFlag)
	if err != nil {
		return err
	}
	if decodeFlag {
		var opts []hexcodec.DecodeOpt
		if truncateFlag {
			opts = append(opts, hexcodec.TruncateOddLength())
		}
		return decodeFile(stdout, inputFlag, outputFlag, key, opts...)
	}
	return encodeFile(stdout, inputFlag, outputFlag, key)
}

func encodeFile(stdout io.Writer, input, output string, key xor.Key) error {
	secret, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("%w '%s': %v", hexcodec.ErrFileOpen, input, err)
	}
	internal.Echo(stdout, "Encrypting %d bytes from %s", len(secret), input)

	screened := xor.Transform(secret, key)
	logrus.WithFields(logrus.Fields{
		"file":  input,
		"bytes": len(screened),
		"mode":  "encode",
	}).Debug("Screened payload")

	if err := hexcodec.WriteLine(output, hexcodec.Encode(screened)); err != nil {
		return err
	}
	internal.Echo(stdout, "Encrypted to %s", output)
	return nil
}

func decodeFile(stdout io.Writer, input, output string, key xor.Key, opts ...hexcodec.DecodeOpt) (err error) {
	line, err := hexcodec.ReadLine(input)
	if err != nil {
		return err
	}
	screened, err := hexcodec.Decode(line, opts...)
	if err != nil {
		return fmt.Errorf("'%s': %w", input, err)
	}
	internal.Echo(stdout, "Decrypting %d bytes from %s", len(screened), input)

	out, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("%w '%s': %v", hexcodec.ErrFileWrite, output, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("%w '%s': %v", hexcodec.ErrFileWrite, output, closeErr))
		}
	}()

	w, err := xor.NewWriter(out, key)
	if err != nil {
		return err
	}
	if _, err := w.Write(screened); err != nil {
		return fmt.Errorf("%w '%s': %v", hexcodec.ErrFileWrite, output, err)
	}
	logrus.WithFields(logrus.Fields{
		"file":  output,
		"bytes": len(screened),
		"mode":  "decode",
	}).Debug("Wrote unscreened payload")
	internal.Echo(stdout, "Decrypted to %s", output)
	return nil
}
