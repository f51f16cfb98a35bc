package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: worker <seed|hashpw> [args]")
	}

	var err error
	switch os.Args[1] {
	case "seed":
		err = runSeed()
	case "hashpw":
		err = runHashPassword(os.Args[2:])
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}
