package main

import (
	"flag"
)

type AppFlags struct {
	ConfigFile string
	OutputFile string
	Mode       string
}

func ParseFlags() AppFlags {
	configFile := flag.String("config", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	outputFile := flag.String("output", "", "Path to the output address list. Overrides the configured output file.")
	outputFileAlias := flag.String("o", "", "Alias for -output")

	modeFlag := flag.String("mode", "", "Mode to run the tool: onetime or automated (overrides config file if set)")
	modeFlagAlias := flag.String("m", "", "Alias for -mode")

	flag.Parse()

	flags := AppFlags{}

	if *configFile != "" {
		flags.ConfigFile = *configFile
	} else if *configFileAlias != "" {
		flags.ConfigFile = *configFileAlias
	}

	if *outputFile != "" {
		flags.OutputFile = *outputFile
	} else if *outputFileAlias != "" {
		flags.OutputFile = *outputFileAlias
	}

	if *modeFlag != "" {
		flags.Mode = *modeFlag
	} else if *modeFlagAlias != "" {
		flags.Mode = *modeFlagAlias
	}

	return flags
}
