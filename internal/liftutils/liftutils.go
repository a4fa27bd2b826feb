package liftutils

import (
	"flag"
	"fmt"
	"os"
)

const version = "1.0.0"

func GetVersion() string {
	return version
}

// ProcessCmdArgs parses the simulator's command line and reports the
// config path, the tick budget and whether --ticks was given explicitly
// (a config file may carry its own budget).
func ProcessCmdArgs() (string, int, bool) {
	help := flag.Bool("help", false, "Show Help Window")
	showVersion := flag.Bool("version", false, "Show Version")
	configPath := flag.String("config", "", "Path to the simulation config file (required)")
	ticks := flag.Int("ticks", 25, "Number of ticks to simulate. Defaults to 25")

	flag.Parse()

	if *showVersion {
		fmt.Println("Version:", GetVersion())
		os.Exit(0)
	}

	if *help {
		fmt.Println("Usage: ./liftsim [OPTIONS]")
		fmt.Println("Single-lift discrete-tick simulator")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *configPath == "" {
		fmt.Println("A config file is required: --config path/to/sim.yaml")
		os.Exit(1)
	}

	if *ticks < 1 {
		fmt.Println("Tick budget must be at least 1")
		os.Exit(1)
	}

	ticksSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "ticks" {
			ticksSet = true
		}
	})

	return *configPath, *ticks, ticksSet
}
