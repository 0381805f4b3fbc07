// Package core holds the provider-neutral pieces of imagegen: request and
// response types, API key resolution, input image loading, and the response
// handler that writes the generated image to disk.
//
// # Client
//
// [Client] wraps a [Provider] and runs one request per call:
//
//	key, err := core.APIKeyFromEnv()
//	if err != nil {
//	    return err
//	}
//	provider, err := gemini.New(ctx, key)
//	if err != nil {
//	    return err
//	}
//	client := core.NewClient(provider)
//	res, err := client.Edit(ctx, "photo.jpg", core.ImageEditRequest{
//	    Model:  gemini.ModelGemini25FlashImage,
//	    Prompt: "Add a rainbow in the sky",
//	}, "edited.png")
//
// There are no retries. Provider errors are returned as the provider
// produced them.
//
// # Errors
//
// Classify failures with errors.Is against [ErrMissingCredentials],
// [ErrInputNotFound], [ErrUnsupportedImage], [ErrNoImageGenerated] and the
// validation sentinels.
package core
