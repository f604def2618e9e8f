// Command skillcheck validates the skill directory it is installed in, or the
// directory given as its only argument.
package main

import (
	"os"

	"github.com/wallacegibbon/skillkit/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewValidateCommand("skillcheck")))
}
