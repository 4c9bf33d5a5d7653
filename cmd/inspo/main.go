package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkosyakov/midinspo/pkg/inspo"
	"github.com/pkosyakov/midinspo/pkg/midi"
	"github.com/pkosyakov/midinspo/pkg/ui"
)

var (
	featuresFlag = flag.Bool("features", false, "Include a human-readable feature dump in the output")
	jsonFlag     = flag.Bool("json", false, "Include the raw feature JSON in the output")
	uiFlag       = flag.Bool("ui", false, "Launch the graphical interface instead of using the CLI")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <midi file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *uiFlag {
		app := ui.NewApp(ui.Native{Out: os.Stdout})
		app.ShowFeatures = *featuresFlag
		app.ShowJSON = *jsonFlag
		if err := app.Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	path := flag.Arg(0)
	if path == "" {
		flag.Usage()
		os.Exit(2)
	}

	features, err := midi.ExtractFeatures(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting features: %v\n", err)
		os.Exit(1)
	}

	generator := inspo.New(features, nil)
	ideas, err := generator.Ideas(inspo.Options{
		ShowFeatures: *featuresFlag,
		ShowJSON:     *jsonFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting features: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(ideas)
}
