package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"wordgrid/pkg/wordgrid"
)

func main() {
	pflag.Int("games", 10, "number of games to simulate")
	pflag.String("wordlist", "assets/words.txt", "path to the word list")
	pflag.Duration("bot-timeout", 5*time.Second, "per-move time budget for bots")
	pflag.Int("one-of-n", 5, "N for the OneOfNBest strategy")
	pflag.String("log-level", "info", "log level")
	pflag.Parse()

	viper.SetEnvPrefix("wordgrid")
	viper.AutomaticEnv()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		log.Fatal().Err(err).Msg("binding flags")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		log.Fatal().Err(err).Msg("parsing log level")
	}
	zerolog.SetGlobalLevel(level)

	dict, err := wordgrid.LoadDictionaryFile(viper.GetString("wordlist"))
	if err != nil {
		log.Fatal().Err(err).Msg("loading word list")
	}

	numGames := viper.GetInt("games")
	timeout := viper.GetDuration("bot-timeout")
	oneOfN := viper.GetInt("one-of-n")

	start := time.Now()
	var winsA, winsB int
	for i := 0; i < numGames; i++ {
		scoreA, scoreB := simulateGame(dict, timeout, oneOfN)
		if scoreA > scoreB {
			winsA++
		}
		if scoreB > scoreA {
			winsB++
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("%v games were played\nHighScore won %v games, OneOfNBest won %v games; %v games were draws.\n",
		numGames,
		winsA,
		winsB,
		numGames-winsA-winsB,
	)
	fmt.Println("Took", elapsed)
}

func simulateGame(dict *wordgrid.Dictionary, timeout time.Duration, oneOfN int) (scoreA, scoreB int) {
	botA := wordgrid.NewBot(wordgrid.NewPlayer("Alphonse"), &wordgrid.HighScore{})
	botB := wordgrid.NewBot(wordgrid.NewPlayer("Sylvestre"), &wordgrid.OneOfNBest{N: oneOfN})

	g, err := wordgrid.NewGame(dict, wordgrid.DefaultTileSet, botA.Player, botB.Player)
	if err != nil {
		log.Fatal().Err(err).Msg("creating game")
	}
	if err := g.Start(); err != nil {
		log.Fatal().Err(err).Msg("starting game")
	}

	bots := map[uuid.UUID]*wordgrid.Bot{
		botA.ID: botA,
		botB.ID: botB,
	}

	for g.Status == wordgrid.StatusInProgress {
		bot := bots[g.CurrentPlayer().ID]
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		move := bot.ProposeMove(ctx, g.State())
		cancel()

		if err := g.ExecuteMove(move); err != nil {
			log.Error().Err(err).Stringer("move", move).Msg("move rejected, passing instead")
			if err := g.ExecuteMove(wordgrid.NewPassMove(bot.ID)); err != nil {
				log.Fatal().Err(err).Msg("pass rejected")
			}
		}
	}

	return g.Players[0].Score, g.Players[1].Score
}
