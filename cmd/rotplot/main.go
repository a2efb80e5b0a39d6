package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/flywave/go-rotplot"
	"github.com/flywave/go-rotplot/term"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rotplot: ")
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	flags := flag.NewFlagSet("rotplot", flag.ContinueOnError)
	scenePath := flags.String("scene", "", "YAML scene file")
	out := flags.String("o", "", "write the figure to this file (format from extension); - for stdout png")
	onTerm := flags.Bool("term", false, "show the figure in the terminal")
	each := flags.Bool("each", false, "show after every subplot")
	verbose := flags.Bool("v", false, "log draw calls")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *scenePath == "" {
		flags.Usage()
		return 2
	}
	if *each && !*onTerm && *out != "" {
		log.Print("-each needs -term: a file holds a single figure")
		return 2
	}

	f, err := os.Open(*scenePath)
	if err != nil {
		log.Printf("open scene: %v", err)
		return 1
	}
	scene, err := LoadScene(f)
	f.Close()
	if err != nil {
		log.Printf("%s: %v", *scenePath, err)
		return 1
	}

	display, closer, err := newDisplay(*out, *onTerm)
	if err != nil {
		log.Print(err)
		return 1
	}

	opts := []rotplot.Option{rotplot.WithDisplay(display), rotplot.WithSubplotDisplay(*each)}
	if *verbose {
		opts = append(opts, rotplot.WithLogger(log.New(os.Stderr, "rotplot: ", log.Lmicroseconds)))
	}

	err = run(scene, opts...)
	if cerr := closer.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Print(err)
		if *out != "" && *out != "-" && !*onTerm {
			os.Remove(*out)
		}
		return 1
	}
	return 0
}

func run(scene *Scene, opts ...rotplot.Option) error {
	rotations, err := scene.NamedRotations()
	if err != nil {
		return err
	}

	ctx := rotplot.NewPlotContext(scene.ContextOptions()...)
	p := rotplot.NewRotationPlotter(ctx, opts...)

	if len(rotations) > 1 {
		if len(scene.Vectors) > 0 {
			log.Printf("ignoring %d vectors: only drawn with a single rotation", len(scene.Vectors))
		}
		return p.PlotMultipleRotationMatrices(rotations)
	}
	return p.PlotRotationMatrixAndVectorsInWorldFrame(rotations[0].Rotation, scene.NamedVectors())
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func newDisplay(out string, onTerm bool) (rotplot.Displayer, io.Closer, error) {
	switch {
	case onTerm:
		return term.New(), nopCloser{}, nil
	case out == "-":
		return rotplot.NewWriterDisplay(os.Stdout, "png"), nopCloser{}, nil
	case out != "":
		format := strings.TrimPrefix(strings.ToLower(filepath.Ext(out)), ".")
		w, err := os.Create(out)
		if err != nil {
			return nil, nil, err
		}
		return rotplot.NewWriterDisplay(w, format), w, nil
	default:
		return rotplot.Discard, nopCloser{}, nil
	}
}
