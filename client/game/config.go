package game

import "time"

// Config is the client configuration, read from the environment.
type Config struct {
	ServerURL    string        `envconfig:"GREENWORDS_SERVER_URL" default:"http://localhost:8080"`
	PollInterval time.Duration `envconfig:"GREENWORDS_POLL_INTERVAL" default:"2s"`
	PlayerID     string        `envconfig:"GREENWORDS_PLAYER_ID"`
	Debug        bool          `envconfig:"GREENWORDS_DEBUG" default:"false"`
}
