package main

import (
	"os"

	"github.com/actuli/actuli-api/apiservice"
)

func main() {
	if err := apiservice.Run(); err != nil {
		os.Exit(1)
	}
}
