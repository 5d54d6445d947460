package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/signalkit/sigslot/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityCountKey = "count"
	outputKey     = "output"
)

func main() {
	cmd := &cli.Command{
		Name:  "codegen",
		Usage: "Generate the SignalN arity facades",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Highest signal arity to generate",
				Value: 5,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "Output file, relative to the repo root",
				Value: "signals_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	defer func() {
		log.Printf("codegen finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(arityCountKey))
	out := cmd.String(outputKey)
	log.Printf("generating Signal1..Signal%d into %s", count, out)

	contents, err := templates.SignalsGen(count)
	if err != nil {
		return err
	}
	return os.WriteFile(out, []byte(contents), 0644)
}
