package main

import (
	"context"
	"os"

	"github.com/viant/afs"
	"github.com/viant/uuidclip"
)

func main() {
	cli := &app{
		stdout:           os.Stdout,
		stderr:           os.Stderr,
		fs:               afs.New(),
		defaultConfigURL: uuidclip.DefaultConfigURL(),
	}
	os.Exit(cli.run(context.Background(), os.Args[1:]))
}
