// Command schema-generator writes the preferences JSON Schema so editors can
// validate config.yml.
package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/grovetools/seshconnect/config"
	"github.com/grovetools/seshconnect/logging"
)

func main() {
	output := pflag.StringP("output", "o", filepath.Join("schema", "definitions", "seshconnect.schema.json"), "File to write the schema to")
	pflag.Parse()

	log := logging.NewLogger("schema-generator")

	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		log.WithError(err).Fatal("Error generating schema")
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0755); err != nil {
		log.WithError(err).Fatal("Error creating schema directory")
	}

	if err := os.WriteFile(*output, append(schemaBytes, '\n'), 0644); err != nil {
		log.WithError(err).Fatal("Error writing schema file")
	}

	log.WithField("path", *output).Info("Generated preferences schema")
}
