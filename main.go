package main

import (
	"github.com/gregor-kafka/server/core"
)

func main() {
	core.StartServer()
}
