package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/devblok/ember/asset"
)

var (
	outFile = flag.String("o", "out.epk", "archive file to write")
	author  = flag.String("author", "", "author recorded in the archive header")
	version = flag.Int64("version", 1, "archive version number")
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatal("no input files given")
	}

	builder := asset.NewBuilder(asset.Header{
		Author:      *author,
		DateCreated: time.Now().Unix(),
		Version:     *version,
	})

	for _, path := range flag.Args() {
		f, err := os.Open(path)
		if err != nil {
			log.WithError(err).Fatalf("could not open %s", path)
		}
		if err := builder.Add(filepath.Base(path), f); err != nil {
			f.Close()
			log.WithError(err).Fatalf("could not compress %s", path)
		}
		f.Close()
		log.Infof("added %s", path)
	}

	out, err := os.Create(*outFile)
	if err != nil {
		log.WithError(err).Fatalf("could not create %s", *outFile)
	}
	defer out.Close()

	written, err := builder.WriteTo(out)
	if err != nil {
		log.WithError(err).Fatal("could not write the archive")
	}
	log.Infof("wrote %s, %d bytes", *outFile, written)
}
