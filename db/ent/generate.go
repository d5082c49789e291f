package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/fvillarroel/cobertor-bot/gen/ent",
			Schema:  "github.com/fvillarroel/cobertor-bot/db/ent/schema",
		},
		// the history repositories rely on OnConflictColumns upserts
		entc.FeatureNames("sql/upsert"),
	)
	if err != nil {
		log.Fatal(err)
	}
}
