package lingora

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lingora/client-go/internal/api"
)

// maxBatchSize is the largest number of texts accepted by a single batch
// translate call.
const maxBatchSize = 100

// subtitleFormats lists the subtitle formats the service accepts.
var subtitleFormats = map[string]bool{
	"srt": true,
	"vtt": true,
}

// Translate translates a single text into the target language. The source
// language defaults to "auto" and can be overridden with WithSourceLang.
func (c *Client) Translate(ctx context.Context, text, targetLang string, opts ...TranslateOption) (Result, error) {
	if text == "" {
		return nil, validationError("text must not be empty")
	}
	if targetLang == "" {
		return nil, validationError("target language must not be empty")
	}
	cfg := newTranslateConfig(opts)

	res, err := c.apiClient.Translate(ctx, api.TranslateParams{
		Text:   text,
		Source: cfg.source,
		Target: targetLang,
	})
	return res, wrapError(err)
}

// TranslateBatch translates up to 100 texts in a single call.
func (c *Client) TranslateBatch(ctx context.Context, texts []string, targetLang string, opts ...TranslateOption) (Result, error) {
	if len(texts) == 0 {
		return nil, validationError("texts must not be empty")
	}
	if len(texts) > maxBatchSize {
		return nil, validationError(fmt.Sprintf("batch size %d exceeds maximum of %d", len(texts), maxBatchSize))
	}
	if targetLang == "" {
		return nil, validationError("target language must not be empty")
	}
	cfg := newTranslateConfig(opts)

	res, err := c.apiClient.TranslateBatch(ctx, api.BatchParams{
		Texts:  texts,
		Source: cfg.source,
		Target: targetLang,
	})
	return res, wrapError(err)
}

// TranslateHTML translates an HTML document while preserving its markup.
func (c *Client) TranslateHTML(ctx context.Context, html, targetLang string, opts ...TranslateOption) (Result, error) {
	if html == "" {
		return nil, validationError("html must not be empty")
	}
	if targetLang == "" {
		return nil, validationError("target language must not be empty")
	}
	cfg := newTranslateConfig(opts)

	res, err := c.apiClient.TranslateHTML(ctx, api.HTMLParams{
		HTML:   html,
		Source: cfg.source,
		Target: targetLang,
	})
	return res, wrapError(err)
}

// TranslateEmail translates an email body, keeping headers and structure
// intact.
func (c *Client) TranslateEmail(ctx context.Context, email, targetLang string, opts ...TranslateOption) (Result, error) {
	if email == "" {
		return nil, validationError("email must not be empty")
	}
	if targetLang == "" {
		return nil, validationError("target language must not be empty")
	}
	cfg := newTranslateConfig(opts)

	res, err := c.apiClient.TranslateEmail(ctx, api.EmailParams{
		Email:  email,
		Source: cfg.source,
		Target: targetLang,
	})
	return res, wrapError(err)
}

// TranslateSubtitles translates subtitle content. Format must be "srt" or
// "vtt".
func (c *Client) TranslateSubtitles(ctx context.Context, content, format, targetLang string, opts ...TranslateOption) (Result, error) {
	if content == "" {
		return nil, validationError("subtitle content must not be empty")
	}
	if !subtitleFormats[format] {
		return nil, validationError(fmt.Sprintf("unsupported subtitle format %q (must be srt or vtt)", format))
	}
	if targetLang == "" {
		return nil, validationError("target language must not be empty")
	}
	cfg := newTranslateConfig(opts)

	res, err := c.apiClient.TranslateSubtitles(ctx, api.SubtitleParams{
		Content: content,
		Format:  format,
		Source:  cfg.source,
		Target:  targetLang,
	})
	return res, wrapError(err)
}

// TranslateEach translates texts as independent calls running concurrently
// through the client's admission gate, and returns one result per input in
// the same order. The first error cancels the remaining calls.
func (c *Client) TranslateEach(ctx context.Context, texts []string, targetLang string, opts ...TranslateOption) ([]Result, error) {
	if len(texts) == 0 {
		return nil, validationError("texts must not be empty")
	}
	if targetLang == "" {
		return nil, validationError("target language must not be empty")
	}

	results := make([]Result, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrent)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			res, err := c.Translate(gctx, text, targetLang, opts...)
			if err != nil {
				return fmt.Errorf("translate text %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
