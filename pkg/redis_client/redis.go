package redis_client

import (
	"context"
	"strconv"

	"github.com/bahnboard/bahnboard/pkg/util"
	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

const defaultConnectionAddress = "localhost:6379"
const defaultConnectionPassword = ""
const defaultDatabase = 0

// Configured reports whether a redis address has been provided. Without one
// the document cache stays disabled and every document is fetched fresh.
func Configured() bool {
	env := util.GetEnvironmentVariables()

	return env["BAHNBOARD_REDIS_ADDRESS"] != ""
}

func Connect() error {
	address := defaultConnectionAddress
	password := defaultConnectionPassword
	database := defaultDatabase

	env := util.GetEnvironmentVariables()

	if env["BAHNBOARD_REDIS_ADDRESS"] != "" {
		address = env["BAHNBOARD_REDIS_ADDRESS"]
	}

	if env["BAHNBOARD_REDIS_PASSWORD"] != "" {
		password = env["BAHNBOARD_REDIS_PASSWORD"]
	}

	if env["BAHNBOARD_REDIS_DATABASE"] != "" {
		if n, err := strconv.Atoi(env["BAHNBOARD_REDIS_DATABASE"]); err == nil {
			database = n
		} else {
			return err
		}
	}

	Client = redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       database,
	})

	statusCmd := Client.Ping(context.Background())

	return statusCmd.Err()
}
