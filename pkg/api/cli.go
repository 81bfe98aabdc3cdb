package api

import (
	"time"

	"github.com/bahnboard/bahnboard/pkg/documentcache"
	"github.com/bahnboard/bahnboard/pkg/iris"
	"github.com/bahnboard/bahnboard/pkg/redis_client"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					var cache *documentcache.Cache

					if redis_client.Configured() {
						if err := redis_client.Connect(); err != nil {
							return err
						}

						cache = &documentcache.Cache{}
						cache.Setup(90 * time.Minute)
					} else {
						log.Info().Msg("No redis address configured - document caching disabled")
					}

					return SetupServer(c.String("listen"), iris.NewClient(cache))
				},
			},
		},
	}
}
