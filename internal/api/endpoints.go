package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Translate translates a single text.
func (c *Client) Translate(ctx context.Context, p TranslateParams) (Result, error) {
	return c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/v2/translate",
		Body: map[string]any{
			"text":            p.Text,
			"source_language": p.Source,
			"target_language": p.Target,
		},
	})
}

// TranslateBatch translates multiple texts in one call.
func (c *Client) TranslateBatch(ctx context.Context, p BatchParams) (Result, error) {
	return c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/v2/translate/batch",
		Body: map[string]any{
			"texts":           p.Texts,
			"source_language": p.Source,
			"target_language": p.Target,
		},
	})
}

// TranslateHTML translates an HTML document, preserving markup.
func (c *Client) TranslateHTML(ctx context.Context, p HTMLParams) (Result, error) {
	return c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/v2/translate/html",
		Body: map[string]any{
			"html":            p.HTML,
			"source_language": p.Source,
			"target_language": p.Target,
		},
	})
}

// TranslateEmail translates an email body.
func (c *Client) TranslateEmail(ctx context.Context, p EmailParams) (Result, error) {
	return c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/v2/translate/email",
		Body: map[string]any{
			"email":           p.Email,
			"source_language": p.Source,
			"target_language": p.Target,
		},
	})
}

// TranslateSubtitles translates a subtitle file's contents.
func (c *Client) TranslateSubtitles(ctx context.Context, p SubtitleParams) (Result, error) {
	return c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/v2/translate/subtitles",
		Body: map[string]any{
			"subtitles":       p.Content,
			"format":          p.Format,
			"source_language": p.Source,
			"target_language": p.Target,
		},
	})
}

// DetectLanguage identifies the language of a text.
func (c *Client) DetectLanguage(ctx context.Context, text string) (Result, error) {
	return c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/v2/language_detect",
		Body:   map[string]any{"text": text},
	})
}

// SupportedLanguages lists the language pairs the service supports.
func (c *Client) SupportedLanguages(ctx context.Context) (Result, error) {
	return c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/v2/supported_languages",
	})
}

// AccountSummary returns usage and credit information for the API key.
func (c *Client) AccountSummary(ctx context.Context) (Result, error) {
	return c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/v2/account/summary",
	})
}

// CreateI18nJob uploads an i18n file and queues an asynchronous
// translation job. The upload is sent as multipart form data.
func (c *Client) CreateI18nJob(ctx context.Context, p I18nJobParams) (Result, error) {
	body := map[string]any{
		"target_languages": strings.Join(p.TargetLanguages, ","),
	}
	if p.SourceLanguage != "" {
		body["source_language"] = p.SourceLanguage
	}
	return c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/v2/i18n/create_job",
		Body:   body,
		Files:  map[string]string{"file": p.FilePath},
	})
}

// GetI18nJob returns the status of a single i18n job.
func (c *Client) GetI18nJob(ctx context.Context, jobID string) (Result, error) {
	return c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/v2/i18n/job/%s", url.PathEscape(jobID)),
	})
}

// ListI18nJobs returns a page of i18n jobs for the account.
func (c *Client) ListI18nJobs(ctx context.Context, page, pageSize int) (Result, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))
	return c.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/v2/i18n/jobs",
		Query:  query,
	})
}
