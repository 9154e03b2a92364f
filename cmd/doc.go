// Package cmd holds the lfsr command and its shared helpers.
//
// # Commands
//
// lfsr: Drives registers, the property battery and the composite generators.
//
//	go run ./cmd/lfsr run --taps=5,3 --state=11110
//	go run ./cmd/lfsr test --taps=8,6,5,4 --conf=galois
//	go run ./cmd/lfsr a51 --key=ones --bits=32 --trace
//	go run ./cmd/lfsr search --degree=10 --metrics-file=lfsr.prom
//
// common: Configuration loading, logger construction and register building
// shared by the subcommands.
//
// # Configuration
//
// All subcommands accept a YAML configuration file via the --config flag.
// Command-line flags override config file values. See cmd/lfsr for the format.
package cmd
