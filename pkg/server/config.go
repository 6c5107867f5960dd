package server

import "time"

// Config is the server configuration, read from the environment.
type Config struct {
	Addr      string        `envconfig:"GREENWORDS_ADDR" default:":8080"`
	MaxGames  int           `envconfig:"GREENWORDS_MAX_GAMES" default:"1024"`
	PlayerTTL time.Duration `envconfig:"GREENWORDS_PLAYER_TTL" default:"30s"`
	Debug     bool          `envconfig:"GREENWORDS_DEBUG" default:"false"`
}
