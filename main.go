package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"

	"ebiten-racer/config"
)

func main() {
	profileCPU := flag.Bool("profile", false, "write a CPU profile to the working directory")
	flag.Parse()

	if *profileCPU {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	game := NewGame()
	ebiten.SetWindowSize(config.GetWindowSize())
	ebiten.SetWindowTitle("Tile Track Racer")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
