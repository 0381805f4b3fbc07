package commands

import (
	"github.com/spf13/cobra"

	"github.com/petal-labs/imagegen/core"
)

func (a *App) newEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit_image <input> <instruction> <output>",
		Short: "Edit an image with a Gemini image model",
		Long: `Edit an existing image from a natural-language instruction.

The API key is read from NANO_BANANA_API_KEY, or GEMINI_API_KEY when the
first is unset. The edited image is written to <output> as returned by the
model.

Examples:
  edit_image photo.jpg "Add a rainbow in the sky" edited.png
  edit_image photo.jpg "Make it look like a watercolor" out.png -m gemini-3-pro-image-preview -s 2K
  edit_image portrait.png "Crop to a cinematic frame" wide.png --aspect 21:9`,
		Args: cobra.ExactArgs(3),
		RunE: a.runEdit,
	}
}

func (a *App) runEdit(cmd *cobra.Command, args []string) error {
	input, instruction, output := args[0], args[1], args[2]

	client, err := a.newClient(cmd.Context())
	if err != nil {
		return err
	}

	res, err := client.Edit(cmd.Context(), input, core.ImageEditRequest{
		Model:       core.ModelID(a.model.String()),
		Prompt:      instruction,
		AspectRatio: core.AspectRatio(a.aspect.String()),
		Size:        core.ImageSize(a.size.String()),
	}, output)
	if err != nil {
		return err
	}

	return a.printResult("Edited image saved to", res)
}
