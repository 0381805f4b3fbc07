package commands

import (
	"encoding/json"
	"fmt"

	"github.com/petal-labs/imagegen/core"
)

type resultJSON struct {
	Output   string `json:"output"`
	MIMEType string `json:"mime_type"`
	Text     string `json:"text"`
}

func (a *App) printResult(label string, res *core.ImageResult) error {
	if a.jsonOutput {
		return json.NewEncoder(a.stdout).Encode(resultJSON{
			Output:   res.OutputPath,
			MIMEType: res.MIMEType,
			Text:     res.Text,
		})
	}

	fmt.Fprintf(a.stdout, "%s: %s\n", label, res.OutputPath)
	if res.Text != "" {
		fmt.Fprintf(a.stdout, "Model response: %s\n", res.Text)
	}
	return nil
}
