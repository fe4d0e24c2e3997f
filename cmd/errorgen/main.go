package main

import (
	"log"

	"github.com/budhip/go-fp-ledger/internal/common/codegen/errorgen"
)

var (
	fileLocation      = "./storages/errors-map.csv"
	outputDestination = "./internal/models/"
	outputFile        = "error_map.go"
)

func main() {
	if err := errorgen.GenerateErrorMapFromCSV(fileLocation, outputDestination, outputFile); err != nil {
		log.Fatal(err)
	}
	log.Printf("writing file: %s%s", outputDestination, outputFile)
}
