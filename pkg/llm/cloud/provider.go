// Package cloud is the deliberately unimplemented cloud backend branch.
// Every call fails with a NotConfigured error so callers can distinguish
// "backend mode unsupported" from real generation failures.
package cloud

import (
	"context"

	"cosmic-chat-be/pkg/llm"
)

type CloudProvider struct{}

var _ llm.Provider = &CloudProvider{}

func NewCloudProvider() *CloudProvider {
	return &CloudProvider{}
}

func (c *CloudProvider) Generate(ctx context.Context, turns []llm.Message, systemPrompt string, opts ...llm.Option) (string, error) {
	return "", llm.NewError(llm.KindNotConfigured, "cloud AI not configured", nil)
}

func (c *CloudProvider) GenerateStream(ctx context.Context, turns []llm.Message, systemPrompt string, onChunk llm.ChunkHandler, opts ...llm.Option) error {
	return llm.NewError(llm.KindNotConfigured, "cloud AI not configured", nil)
}

func (c *CloudProvider) ListModels(ctx context.Context) ([]string, error) {
	return nil, llm.NewError(llm.KindNotConfigured, "cloud AI not configured", nil)
}

func (c *CloudProvider) CheckHealth(ctx context.Context) bool {
	return false
}
