package routes

import (
	"strconv"
	"time"

	"github.com/bahnboard/bahnboard/pkg/iris"
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
)

func TimetableRouter(router fiber.Router, client *iris.Client) {
	router.Get("/:eva", func(c *fiber.Ctx) error {
		return getTimetable(c, client)
	})
}

func getTimetable(c *fiber.Ctx, client *iris.Client) error {
	eva, err := strconv.Atoi(c.Params("eva"))
	if err != nil {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "EVA must be a number",
		})
	}

	options := iris.Options{
		IncludeRoute:    c.Query("includeRoute") == "true",
		IncludeMessages: c.Query("includeMessages") == "true",
	}

	// Window bounds are unix millisecond timestamps.
	if startQuery := c.Query("start"); startQuery != "" {
		millis, err := strconv.ParseInt(startQuery, 10, 64)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Missing or invalid start date",
			})
		}
		options.StartDate = time.UnixMilli(millis)
	}

	if endQuery := c.Query("end"); endQuery != "" {
		millis, err := strconv.ParseInt(endQuery, 10, 64)
		if err != nil {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "Missing or invalid end date",
			})
		}
		options.EndDate = time.UnixMilli(millis)
	}

	result, err := client.Timetable(c.UserContext(), eva, options)

	if err != nil {
		if iris.IsUserError(err) {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		log.Error().Err(err).Int("eva", eva).Msg("Failed to assemble timetable")

		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Could not assemble timetable",
		})
	}

	groups := []string{"basic"}
	if options.IncludeRoute {
		groups = append(groups, "route")
	}
	if options.IncludeMessages {
		groups = append(groups, "messages")
	}

	resultReduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: groups,
	}, result)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce timetable",
		})
	}

	return c.JSON(resultReduced)
}
