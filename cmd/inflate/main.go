// Command inflate decompresses a raw DEFLATE stream (RFC 1951, no zlib or
// gzip framing) and hex dumps the result, or writes it to a file.
//
// With no input file it decodes a built-in demo buffer.
package main

import (
	"bytes"
	"context"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/encoding/charmap"

	"github.com/cam-per/inflate"
	"github.com/cam-per/inflate/utils"
)

func main() {
	cmd := &cli.Command{
		Name:      "inflate",
		Usage:     "decompress raw DEFLATE streams",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "enable debug logging",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write decoded bytes to `FILE` instead of dumping",
			},
			&cli.BoolFlag{
				Name:    "text",
				Aliases: []string{"t"},
				Usage:   "print the decoded bytes as text before the dump",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	if cmd.Bool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
	}

	data := demoData
	demo := true
	if path := cmd.Args().First(); path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return errors.Wrap(err, "unable to read input")
		}
		demo = false
		logrus.Debugf("read %s from %s", humanize.IBytes(uint64(len(data))), path)
	} else {
		logrus.Debug("no input file, decoding the built-in demo buffer")
	}

	out, err := inflate.Decode(data)
	if err != nil {
		return errors.Wrap(err, "decode failed")
	}
	logrus.Infof("decompressed %s from %s",
		humanize.IBytes(uint64(len(out))), humanize.IBytes(uint64(len(data))))

	if path := cmd.String("output"); path != "" {
		if err := os.WriteFile(path, out, 0o644); err != nil {
			return errors.Wrap(err, "unable to write output")
		}
		logrus.Infof("wrote %s", path)
		return nil
	}

	if cmd.Bool("text") || demo {
		os.Stdout.WriteString(utils.CString(out).Decode(charmap.ISO8859_1))
		os.Stdout.WriteString("\n\n")
	}
	if len(out) == 0 {
		return nil
	}
	return utils.HexDump(os.Stdout, bytes.NewReader(out), 0, int64(len(out)))
}
