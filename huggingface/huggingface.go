// Package huggingface is the titlegen adapter for the Hugging Face
// inference API.
package huggingface

import (
	"context"
	"fmt"
	"time"

	"cineseek/errs"

	"github.com/go-resty/resty/v2"
)

const modelPath = "/models/gpt2"

type Options struct {
	APIKey  string
	BaseURL string
}

type Client struct {
	http *resty.Client
}

func NewClient(opts Options) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(opts.BaseURL).
			SetTimeout(30 * time.Second).
			SetAuthToken(opts.APIKey),
	}
}

type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
}

type generateParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
	DoSample     bool    `json:"do_sample"`
}

type generateCandidate struct {
	GeneratedText string `json:"generated_text"`
}

// GenerateTitle runs one completion and returns the raw generated text of
// the first candidate. The caller strips the prompt echo.
func (c *Client) GenerateTitle(ctx context.Context, description string) (string, error) {
	var out []generateCandidate
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(generateRequest{
			Inputs: fmt.Sprintf("Movie title for: %s\nTitle: ", description),
			Parameters: generateParameters{
				MaxNewTokens: 8,
				Temperature:  0.8,
				DoSample:     true,
			},
		}).
		SetResult(&out).
		Post(modelPath)
	if err != nil {
		return "", fmt.Errorf("huggingface: generate title: %w", err)
	}
	if !resp.IsSuccess() {
		return "", errs.Errorf(errs.EUPSTREAM, "huggingface: inference returned status %d", resp.StatusCode())
	}
	if len(out) == 0 {
		return "", errs.Errorf(errs.EUPSTREAM, "huggingface: empty inference response")
	}
	return out[0].GeneratedText, nil
}
