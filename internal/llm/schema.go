package llm

// BuildTaskJSONSchema returns the output contract for the reasoning call as
// a JSON-Schema map (draft 2020-12 subset). Every field is nullable and the
// numeric fields also accept strings, since models routinely quote numbers;
// normalization coerces afterwards.
func BuildTaskJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties": map[string]any{
			"codigo_cobertor": nullableString(),
			"cuartel":         nullableString(),
			"hileras":         nullableNumber(),
			"largo_metros":    nullableNumber(),
			"prioridad":       nullableString(),
			"descripcion":     nullableString(),
			"notas":           nullableString(),
		},
	}
}

func nullableString() map[string]any {
	return map[string]any{"type": []string{"string", "null"}}
}

func nullableNumber() map[string]any {
	return map[string]any{"type": []string{"number", "string", "null"}}
}
