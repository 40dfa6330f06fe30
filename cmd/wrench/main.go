package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/napalu/wrench"
	"github.com/napalu/wrench/frame"
	"github.com/napalu/wrench/replay"
	"github.com/napalu/wrench/util"
)

func main() {
	schema := wrench.DefaultSchema()

	raw, err := schema.Parse(os.Args[1:])
	if err != nil {
		fail(schema, err)
	}

	if raw.HasFlag("help") {
		schema.PrintUsage(os.Stdout)
		os.Exit(0)
	}
	if raw.HasFlag("version") {
		fmt.Printf("%s %s\n", schema.AppName(), schema.Version())
		os.Exit(0)
	}

	config, err := schema.BuildConfig(raw)
	if err != nil {
		fail(schema, err)
	}

	switch config.Mode() {
	case "show":
		err = runShow(config)
	case "replay":
		err = runReplay(config)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func fail(schema *wrench.Schema, err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
	schema.PrintUsage(os.Stderr)
	os.Exit(1)
}

func runShow(config *wrench.Config) error {
	reader, err := frame.NewReaderFromConfig(config)
	if err != nil {
		return err
	}
	scene, err := reader.Build()
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d stacking contexts, %d display items (queue depth %d)\n",
		config.Show.InputPath, scene.StackingContexts, len(scene.Items), reader.QueueDepth())
	if config.Debug {
		fmt.Printf("  device pixel ratio: %g\n", util.Deref(config.DevicePixelRatio, 1.0))
		counts := scene.CountByKind()
		kinds := make([]string, 0, len(counts))
		for kind := range counts {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)
		for _, kind := range kinds {
			fmt.Printf("  %s: %d\n", kind, counts[kind])
		}
	}

	return nil
}

func runReplay(config *wrench.Config) error {
	replayer := replay.NewReplayer(config.Replay)
	if replayer.SkipUploads && !replayer.ReissueAPI {
		fmt.Fprintln(os.Stderr, "warning: --skip-uploads has no effect without --api")
	}

	frames, err := replayer.Frames()
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d recorded frames (reissue api: %t, skip uploads: %t)\n",
		replayer.InputPath(), len(frames), replayer.ReissueAPI, replayer.SkipUploads)

	return nil
}
