package main

import (
	"meetsync/core/logger"
	"meetsync/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
