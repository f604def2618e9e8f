// Command skillpack packages a skill directory into a distributable ZIP archive.
//
//	skillpack <skill_directory> [output_path]
package main

import (
	"os"

	"github.com/wallacegibbon/skillkit/internal/cli"
)

func main() {
	os.Exit(cli.Execute(cli.NewPackCommand("skillpack")))
}
