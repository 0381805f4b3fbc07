package gemini

import (
	"context"

	"github.com/petal-labs/imagegen/core"
	"github.com/petal-labs/imagegen/providers"
)

func init() {
	providers.Register(ProviderID, func(ctx context.Context, apiKey core.Secret, opts providers.Options) (core.Provider, error) {
		var gopts []Option
		if opts.BaseURL != "" {
			gopts = append(gopts, WithBaseURL(opts.BaseURL))
		}
		if opts.Logger != nil {
			gopts = append(gopts, WithLogger(opts.Logger))
		}

		p, err := New(ctx, apiKey, gopts...)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
}
