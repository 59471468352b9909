package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	argparse "github.com/hzeller/libargparse"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	port := "8080"
	p := argparse.NewParser(argparse.ParserConfig{
		Prog:         os.Args[0],
		BasenameOnly: true,
		Description:  "An example application demonstrating argparse features.",
		Epilog:       "Run with --debug to trace how the command line was decoded.",
		Version:      "0.1.0",
		AddHelp:      true,
		AddVersion:   true,
		Logger:       logger,
	})

	net := p.AddGroup("network options", "")
	must(p.AddTo(net, argparse.MustArgument(argparse.ArgumentConfig{
		Long: "--port", Short: "p", Default: &port, Help: "Port to run the server on",
	})))
	must(p.AddTo(net, argparse.MustArgument(argparse.ArgumentConfig{
		Long: "--peers", Nargs: argparse.NargsZeroOrMore, Metavar: "ADDR", Help: "Peers to connect to",
	})))

	must(p.Add(argparse.MustArgument(argparse.ArgumentConfig{
		Long: "--debug", Short: "d", Action: argparse.StoreTrue, Help: "Enable debug output",
	})))
	must(p.Add(argparse.MustArgument(argparse.ArgumentConfig{
		Long: "--mode", Choices: []string{"serve", "check"}, Help: "What to do",
	})))
	must(p.Add(argparse.MustArgument(argparse.ArgumentConfig{
		Long: "root", Help: "Directory to serve",
	})))

	res := argparse.ParseOrExit(p, os.Args)

	if res.Bool("debug") {
		level.Set(slog.LevelDebug)
		// Decode again so the decoding steps show up in the log.
		res = argparse.ParseOrExit(p, os.Args)
	}

	for _, r := range res.Specified() {
		logger.Debug("Specified", slog.String("argument", r.Arg.Dest()), slog.Any("values", r.Values))
	}

	fmt.Printf("root=%s port=%s mode=%s peers=%s\n",
		res.String("root"), res.String("port"), res.String("mode"), strings.Join(res.Strings("peers"), ","))
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error defining arguments:", err)
		os.Exit(1)
	}
}
