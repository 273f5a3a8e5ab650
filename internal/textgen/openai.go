package textgen

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
)

type completeFunc func(ctx context.Context, prompt string) (string, error)

// OpenAI generates seed text through the Responses API.
type OpenAI struct {
	complete completeFunc
	logger   *slog.Logger
}

// NewOpenAI returns a provider using model with the given API key.
func NewOpenAI(apiKey, model string, logger *slog.Logger) (*OpenAI, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	complete := func(ctx context.Context, prompt string) (string, error) {
		resp, err := client.Responses.New(ctx, responses.ResponseNewParams{
			Model: openai.ChatModel(model),
			Input: responses.ResponseNewParamsInputUnion{
				OfInputItemList: responses.ResponseInputParam{
					responses.ResponseInputItemParamOfMessage(
						responses.ResponseInputMessageContentListParam{
							{
								OfInputText: &responses.ResponseInputTextParam{
									Text: prompt,
								},
							},
						},
						responses.EasyInputMessageRoleUser,
					),
				},
			},
		})
		if err != nil {
			return "", err
		}
		return resp.OutputText(), nil
	}
	return &OpenAI{complete: complete, logger: logger}, nil
}

// Generate requests a paragraph for req and validates its length.
func (o *OpenAI) Generate(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	raw, err := o.complete(ctx, Prompt(req))
	o.logger.Debug("openai text request", "topic", req.Topic, "words", req.Words, "duration", time.Since(start))
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}
	text := Clean(raw)
	if err := checkLength(text); err != nil {
		return "", err
	}
	return text, nil
}

// ImageProvider returns a reference (URL) to a decorative image for a topic.
type ImageProvider interface {
	Image(ctx context.Context, topic string) (string, error)
}

// NoImage never produces an image.
type NoImage struct{}

// Image returns an empty reference.
func (NoImage) Image(context.Context, string) (string, error) {
	return "", nil
}

type generateImageFunc func(ctx context.Context, prompt string) (string, error)

// OpenAIImages generates topic images with the Images API.
type OpenAIImages struct {
	generate generateImageFunc
}

// NewOpenAIImages returns an image provider for the given API key.
func NewOpenAIImages(apiKey string) (*OpenAIImages, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	generate := func(ctx context.Context, prompt string) (string, error) {
		resp, err := client.Images.Generate(ctx, openai.ImageGenerateParams{
			Prompt: prompt,
			Model:  openai.ImageModelDallE3,
			N:      openai.Int(1),
			Size:   openai.ImageGenerateParamsSize1792x1024,
		})
		if err != nil {
			return "", err
		}
		if len(resp.Data) == 0 {
			return "", nil
		}
		return resp.Data[0].URL, nil
	}
	return &OpenAIImages{generate: generate}, nil
}

// Image generates an image for topic.
func (o *OpenAIImages) Image(ctx context.Context, topic string) (string, error) {
	url, err := o.generate(ctx, ImagePrompt(topic))
	if err != nil {
		return "", fmt.Errorf("failed to generate image: %w", err)
	}
	return url, nil
}
