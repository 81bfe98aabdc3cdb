package console

import (
	"encoding/json"
	"fmt"

	"github.com/bahnboard/bahnboard/pkg/iris"
	"github.com/urfave/cli/v2"
)

func stationCommand() *cli.Command {
	return &cli.Command{
		Name:  "station",
		Usage: "Get station info",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "query",
				Aliases:  []string{"q"},
				Usage:    "Query (name, EVA or DS100)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "Show raw result",
			},
		},
		Action: func(c *cli.Context) error {
			query := c.String("query")

			if !c.Bool("raw") {
				fmt.Printf("Searching for %s...\n", query)
			}

			client := iris.NewClient(nil)

			station, err := client.LookupStation(c.Context, query)
			if err != nil {
				return err
			}
			if station == nil {
				return cli.Exit("Station not found", 1)
			}

			if c.Bool("raw") {
				raw, err := json.MarshalIndent(station, "", "  ")
				if err != nil {
					return err
				}

				fmt.Println(string(raw))
				return nil
			}

			fmt.Println(formatStationDetails(*station))
			if len(station.Meta) > 0 {
				fmt.Println("Meta stations:")
				for _, meta := range station.Meta {
					fmt.Printf("  - %s\n", formatStationDetails(meta))
				}
			}

			return nil
		},
	}
}
