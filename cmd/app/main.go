package main

import (
	"github.com/moviedrafter/core/internal/app"
	"github.com/moviedrafter/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
