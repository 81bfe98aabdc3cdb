package api

import (
	"github.com/bahnboard/bahnboard/pkg/api/routes"
	"github.com/bahnboard/bahnboard/pkg/iris"
	"github.com/gofiber/fiber/v2"
)

func SetupServer(listen string, client *iris.Client) error {
	webApp := SetupApp(client)

	return webApp.Listen(listen)
}

// SetupApp builds the fiber app without binding it to a listener.
func SetupApp(client *iris.Client) *fiber.App {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/iris")

	group.Get("version", routes.APIVersion)

	routes.StationRouter(group.Group("/station"), client)
	routes.TimetableRouter(group.Group("/timetable"), client)

	return webApp
}
