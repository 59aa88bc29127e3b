// Package json writes command results as indented JSON documents, one per
// call. A link, unlink or status result looks like:
//
//	{
//	  "command": "status",
//	  "packs": [
//	    {
//	      "name": "fish",
//	      "path": "/home/me/dots/fish",
//	      "status": "linked",
//	      "symlinks": [
//	        {"kind": "mapped", "source": "...", "destination": "...", "status": "linked"}
//	      ]
//	    }
//	  ],
//	  "dryRun": false, "changed": 0, "failed": 0, "skipped": 0, "timestamp": "..."
//	}
//
// A symlink in error carries its "reason". The list command emits
// {"packs": [{"name", "path", "symlinks", "status"}]} with a symlink count.
// Errors and messages are {"error": ...} and {"message": ...}.
package json

import (
	"encoding/json"
	"io"
)

// Renderer encodes results without HTML escaping, so paths and the ->
// arrows in messages come out as typed.
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return &Renderer{
		output:  output,
		encoder: encoder,
	}, nil
}

// RenderResult encodes a *types.DisplayResult or *types.ListPacksResult
// through its json tags
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(result)
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]string{
		"error": err.Error(),
	}
	return r.encoder.Encode(errorObj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	messageObj := map[string]string{
		"message": msg,
	}
	return r.encoder.Encode(messageObj)
}
