// Command parentstories runs the Parent Stories backend and its maintenance
// tasks.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"

	"github.com/werdnakof/ask-parents-25-questions/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
