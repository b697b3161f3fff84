package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/lukaszgryglicki/photonmap/internal/photonmap"
)

func main() {
	photonmap.Debug = os.Getenv("DEBUG") != ""
	photonmap.PNG = os.Getenv("PNG") != ""
	photonmap.RAW = os.Getenv("RAW") != ""
	photonmap.GIF = os.Getenv("GIF") != ""
	photonmap.DUMP = os.Getenv("DUMP") != ""
	if !photonmap.PNG && !photonmap.RAW && !photonmap.GIF && !photonmap.DUMP {
		photonmap.PNG = true
	}
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := "scenes/config.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := photonmap.Run(ctx, cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
