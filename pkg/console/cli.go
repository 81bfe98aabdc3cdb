package console

import (
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "board",
		Usage: "Query stations and timetables from the terminal",
		Subcommands: []*cli.Command{
			stationCommand(),
			timetableCommand(),
		},
	}
}
