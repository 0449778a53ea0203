package wrath

import (
	_ "embed"

	"github.com/ssargent/wdbc/pkg/schema"
)

//go:embed schema.yaml
var schemaYAML []byte

// Schemas returns the schema registry for the tables in this package.
func Schemas() (*schema.Registry, error) {
	return schema.Parse(schemaYAML)
}
