// internal/corpus/schema.go
package corpus

import "github.com/xeipuuv/gojsonschema"

// corpusFileSchema validates a whole corpus file: an array of prompt records.
const corpusFileSchema = `{
	"type": "array",
	"items": ` + promptRecordSchema + `
}`

// promptRecordSchema validates a single prompt record. Responses nest
// category -> model id -> response text.
const promptRecordSchema = `{
	"type": "object",
	"required": ["Index", "Responses"],
	"properties": {
		"Index": { "type": "string" },
		"Responses": {
			"type": "object",
			"additionalProperties": {
				"type": "object",
				"additionalProperties": { "type": "string" }
			}
		}
	}
}`

var (
	fileSchemaLoader   = gojsonschema.NewStringLoader(corpusFileSchema)
	recordSchemaLoader = gojsonschema.NewStringLoader(promptRecordSchema)
)

// validateFile checks a raw corpus file against the array schema.
func validateFile(raw []byte) (*gojsonschema.Result, error) {
	return gojsonschema.Validate(fileSchemaLoader, gojsonschema.NewBytesLoader(raw))
}

// validateRecord checks one raw array element against the record schema.
func validateRecord(raw []byte) (*gojsonschema.Result, error) {
	return gojsonschema.Validate(recordSchemaLoader, gojsonschema.NewBytesLoader(raw))
}
