// Command ethiodate converts dates between the Ethiopian and Gregorian
// calendars on the command line and over HTTP.
package main

import (
	"log"
	"os"

	"github.com/rabitt1ove/ethiocal/cmd/ethiodate/commands"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ethiodate: ")

	if err := commands.Execute(); err != nil {
		log.Print(err)
		os.Exit(commands.ExitCode(err))
	}
}
