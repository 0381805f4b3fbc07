package core

// SaveImageResponse walks resp.Parts in order and writes every image part to
// outputPath, so the last image part is what remains on disk.
//
// Text parts are not accumulated: each one replaces the previous, and the
// last text part seen is returned in ImageResult.Text. Callers rely on this
// last-wins behavior; do not change it to concatenation.
//
// A response without any image part fails with ErrNoImageGenerated and
// leaves outputPath untouched.
func SaveImageResponse(resp *ImageResponse, outputPath string) (*ImageResult, error) {
	if resp == nil {
		return nil, ErrNoImageGenerated
	}

	result := &ImageResult{OutputPath: outputPath}

	for _, part := range resp.Parts {
		switch {
		case part.Text != "":
			result.Text = part.Text
		case part.IsImage():
			if err := writeImage(outputPath, part.Data); err != nil {
				return nil, err
			}
			result.Images++
			result.MIMEType = part.MIMEType
			if result.MIMEType == "" {
				result.MIMEType = DetectMIMEType(part.Data)
			}
		}
	}

	if result.Images == 0 {
		return nil, ErrNoImageGenerated
	}
	return result, nil
}
