package main

import (
	"os"

	"github.com/mr-joshcrane/tweetsmith"
)

func main() {
	os.Exit(tweetsmith.Main(os.Args[1:]))
}
