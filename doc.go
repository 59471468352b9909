// Package argparse is a command-line argument parsing library in the style of
// Python's argparse.
//
// Arguments are declared up front as validated descriptors and registered in a
// Parser, optionally split into named groups for help output. The Parser then
// decodes a raw token list into a ResultSet:
//
//	p := argparse.NewParser(argparse.ParserConfig{Prog: "mytool", AddHelp: true})
//	p.Add(argparse.MustArgument(argparse.ArgumentConfig{Long: "--count", Short: "c", Help: "number of runs"}))
//	p.Add(argparse.MustArgument(argparse.ArgumentConfig{Long: "file", Help: "input file"}))
//
//	res := argparse.ParseOrExit(p, os.Args)
//	fmt.Println(res.String("count"), res.String("file"))
//
// A name without leading dashes declares a positional argument. Options may
// take no values (StoreTrue, StoreFalse) or a number of values given by their
// Nargs. An option's values end at the first token that looks like an option
// ("-x" or "--name"), registered or not.
//
// Decoding errors are typed (see package errors) so callers can tell a missing
// positional from an unknown option; all of them match errors.ErrDecode.
package argparse
