package spoke

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/rosscodg/railreach/pkg/extract"
	"github.com/rosscodg/railreach/pkg/railreach"
	"github.com/rosscodg/railreach/pkg/registry"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	sourceFlag := &cli.StringFlag{
		Name:  "source",
		Value: "index.html",
		Usage: "path of the source document containing the embedded data blocks",
	}
	outputFlag := &cli.StringFlag{
		Name:  "output",
		Value: ".",
		Usage: "directory the site is generated into",
	}

	return &cli.Command{
		Name:  "pages",
		Usage: "Generates the static spoke pages",
		Subcommands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "generate the shared assets and every terminal & station page",
				Flags: []cli.Flag{sourceFlag, outputFlag},
				Action: func(c *cli.Context) error {
					dataset, err := parseSource(c.String("source"))
					if err != nil {
						return err
					}

					siteRegistry, err := registry.Load()
					if err != nil {
						return err
					}

					generator := &Generator{
						Dataset:   dataset,
						Registry:  siteRegistry,
						OutputDir: c.String("output"),
					}

					if err := generator.GenerateAll(); err != nil {
						return err
					}

					log.Info().
						Int("terminals", len(siteRegistry.Terminals)).
						Int("stations", len(siteRegistry.Stations)).
						Msg("Generation complete")

					return nil
				},
			},
			{
				Name:  "dump",
				Usage: "parse the source document and print the dataset",
				Flags: []cli.Flag{sourceFlag},
				Action: func(c *cli.Context) error {
					dataset, err := parseSource(c.String("source"))
					if err != nil {
						return err
					}

					pretty.Println(dataset)

					return nil
				},
			},
		},
	}
}

func parseSource(path string) (*railreach.Dataset, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source document %s: %w", path, err)
	}

	dataset, err := extract.ParseSourceDocument(string(source))
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("terminals", len(dataset.Terminals)).
		Int("stations", len(dataset.Stations)).
		Msg("Parsed source document")

	return dataset, nil
}
