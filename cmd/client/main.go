package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	clientgame "github.com/kmansel/greenwords/client/game"
	"github.com/kmansel/greenwords/client/network"
	"github.com/kmansel/greenwords/pkg/game"
	"github.com/kmansel/greenwords/pkg/logging"
	"github.com/kmansel/greenwords/pkg/version"
)

func main() {
	_ = godotenv.Load()

	config := clientgame.Config{}
	if err := envconfig.Process("", &config); err != nil {
		logging.DefaultLogger().Fatalw("failed to process config", "error", err)
	}

	serverURL := flag.String("server-url", config.ServerURL, "Game server URL")
	gameID := flag.String("game", "", "Game id to join (empty creates a new game)")
	flag.Parse()

	logger := logging.NewLogger("client", config.Debug)
	logger.Infow("starting client", "version", version.Get(), "server_url", *serverURL)

	playerID := config.PlayerID
	if playerID == "" {
		playerID = uuid.New().String()
	}
	id := *gameID
	if id == "" {
		id = uuid.New().String()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := clientgame.NewGame(clientgame.NewGameOptions{
		Logger:       logger,
		Network:      network.NewClient(*serverURL),
		PollInterval: config.PollInterval,
	})
	if err := g.Join(ctx, id, playerID); err != nil {
		logger.Fatalw("failed to join game", "game_id", id, "error", err)
	}
	g.Start(ctx)

	fmt.Printf("joined game %s as %s\n", id, playerID)
	fmt.Println("commands: board, key, tap <n>, team <one|two|none>, log, status, quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "board":
			printBoard(g.Session(), false)
		case "key":
			printBoard(g.Session(), true)
		case "tap":
			if len(fields) < 2 {
				fmt.Println("usage: tap <n>")
				continue
			}
			index, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Println("usage: tap <n>")
				continue
			}
			if err := g.Guess(ctx, index); err != nil {
				fmt.Printf("guess failed: %v\n", err)
			}
		case "team":
			if len(fields) < 2 {
				fmt.Println("usage: team <one|two|none>")
				continue
			}
			side, err := game.ParseSide(fields[1])
			if err != nil {
				fmt.Printf("unknown team: %s\n", fields[1])
				continue
			}
			g.SetSide(side)
		case "log":
			printLog(g.Session())
		case "status":
			printStatus(g.Session())
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command: %s\n", fields[0])
		}
	}
}

func printBoard(s *game.Session, keycard bool) {
	if s == nil {
		return
	}
	for row := 0; row < game.BoardSize; row += 5 {
		for _, c := range s.Cells[row : row+5] {
			fmt.Printf("%2d:%-14s", c.Index, cellLabel(s, c, keycard))
		}
		fmt.Println()
	}
	printStatus(s)
}

func cellLabel(s *game.Session, c game.Cell, keycard bool) string {
	switch c.Display() {
	case game.DisplayGreen:
		return "[" + c.Word + "]"
	case game.DisplayBlack:
		return "#" + c.Word + "#"
	}
	if keycard && s.Player.Side != game.SideNone {
		switch c.SideColor(s.Player.Side) {
		case game.ColorGreen:
			return c.Word + "*"
		case game.ColorBlack:
			return c.Word + "!"
		}
	}
	return c.Word
}

func printLog(s *game.Session) {
	if s == nil {
		return
	}
	for _, e := range s.Events {
		switch e.Type {
		case game.EventTypeGuess:
			word := fmt.Sprintf("cell %d", e.Index)
			if e.Index >= 0 && e.Index < len(s.Cells) {
				word = s.Cells[e.Index].Word
			}
			fmt.Printf("%4d %s tapped %q for team %s\n", e.Number, e.PlayerID, word, e.Side)
		default:
			fmt.Printf("%4d %s %s (team %s)\n", e.Number, e.PlayerID, e.Type, e.Side)
		}
	}
}

func printStatus(s *game.Session) {
	if s == nil {
		return
	}
	fmt.Printf("status: %s, %d green left, team %s, %d players\n",
		s.Status(), s.RemainingGreen(), s.Player.Side, len(s.Players))
}
