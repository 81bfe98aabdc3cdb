package console

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bahnboard/bahnboard/pkg/iris"
	"github.com/urfave/cli/v2"
)

func timetableCommand() *cli.Command {
	return &cli.Command{
		Name:  "timetable",
		Usage: "Get station timetable (with changes)",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "eva",
				Aliases:  []string{"e"},
				Usage:    "EVA number of the station",
				Required: true,
			},
			&cli.BoolFlag{
				Name:    "route",
				Aliases: []string{"r"},
				Usage:   "Show route",
			},
			&cli.BoolFlag{
				Name:    "messages",
				Aliases: []string{"msg"},
				Usage:   "Show messages",
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "Show raw result",
			},
			&cli.IntFlag{
				Name:    "lookbehind",
				Aliases: []string{"lb"},
				Value:   300,
				Usage:   "Lookbehind in seconds",
			},
			&cli.IntFlag{
				Name:    "lookahead",
				Aliases: []string{"la"},
				Value:   3600,
				Usage:   "Lookahead in seconds",
			},
			&cli.IntFlag{
				Name:    "max",
				Aliases: []string{"m"},
				Value:   10,
				Usage:   "Max number of results to show",
			},
		},
		Action: func(c *cli.Context) error {
			client := iris.NewClient(nil)

			now := time.Now()

			result, err := client.Timetable(c.Context, c.Int("eva"), iris.Options{
				StartDate:       now.Add(-time.Duration(c.Int("lookbehind")) * time.Second),
				EndDate:         now.Add(time.Duration(c.Int("lookahead")) * time.Second),
				IncludeRoute:    c.Bool("route"),
				IncludeMessages: c.Bool("messages"),
			})
			if err != nil {
				if iris.IsUserError(err) {
					return cli.Exit(err.Error(), 1)
				}
				return err
			}

			stops := result.Stops
			if len(stops) > c.Int("max") {
				stops = stops[:c.Int("max")]
			}

			if c.Bool("raw") {
				raw, err := json.MarshalIndent(stops, "", "  ")
				if err != nil {
					return err
				}

				fmt.Println(string(raw))
				return nil
			}

			fmt.Printf("Timetable for %s - %s (%d Stops):\n",
				green(result.Station.Name), red(fmt.Sprint(result.Station.Eva)), len(stops))

			var blocks []string
			for _, stop := range stops {
				blocks = append(blocks, formatStop(stop, c.Bool("route"), c.Bool("messages"), result.Station.Name))
			}

			fmt.Println(strings.Join(blocks, "\n\n"))

			return nil
		},
	}
}
