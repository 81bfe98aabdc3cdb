package routes

import (
	"github.com/bahnboard/bahnboard/pkg/iris"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func StationRouter(router fiber.Router, client *iris.Client) {
	router.Get("/:input", func(c *fiber.Ctx) error {
		return getStation(c, client)
	})
}

func getStation(c *fiber.Ctx, client *iris.Client) error {
	station, err := client.LookupStation(c.UserContext(), c.Params("input"))

	if err != nil {
		log.Error().Err(err).Msg("Failed to lookup station")

		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not fetch station details",
		})
	}

	if station == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find a station matching the query",
		})
	}

	return c.JSON(station)
}
