package commands

import (
	"github.com/spf13/cobra"

	"github.com/petal-labs/imagegen/core"
)

func (a *App) newGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate_image <prompt> <output>",
		Short: "Generate an image with a Gemini image model",
		Long: `Generate a new image from a text prompt.

Credentials and flags work as for edit_image.

Examples:
  generate_image "A lighthouse at dusk, oil painting" lighthouse.png
  generate_image "Product shot of a ceramic mug" mug.png -a 4:5 -m gemini-3-pro-image-preview -s 4K`,
		Args: cobra.ExactArgs(2),
		RunE: a.runGenerate,
	}
}

func (a *App) runGenerate(cmd *cobra.Command, args []string) error {
	prompt, output := args[0], args[1]

	client, err := a.newClient(cmd.Context())
	if err != nil {
		return err
	}

	res, err := client.Generate(cmd.Context(), core.ImageGenerateRequest{
		Model:       core.ModelID(a.model.String()),
		Prompt:      prompt,
		AspectRatio: core.AspectRatio(a.aspect.String()),
		Size:        core.ImageSize(a.size.String()),
	}, output)
	if err != nil {
		return err
	}

	return a.printResult("Image saved to", res)
}
