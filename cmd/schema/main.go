package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/litetravel/notescope/pkg/config"
)

// regenerates the JSON schema embedded by pkg/config. Run via go:generate
// from that package, or directly with an explicit output path.
func main() {
	out := "schema.json"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	schema := jsonschema.Reflect(&config.Config{})

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("marshal config schema: %v", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(out, data, 0o600); err != nil { //nolint:gosec // generated schema, not sensitive
		log.Fatalf("write %s: %v", out, err)
	}

	fmt.Printf("wrote config schema to %s\n", out)
}
