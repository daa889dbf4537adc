package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newOpenAIImpl creates a new OpenAI implementation
func newOpenAIImpl(cfg Config) *openAIImpl {
	return &openAIImpl{
		apiKey:     cfg.APIKey,
		project:    cfg.Project,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat-completion request to the OpenAI API
func (o *openAIImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	chatReq := o.transformRequest(req)

	body, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	if o.project != "" {
		httpReq.Header.Set("OpenAI-Project", o.project)
	}

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}

	return o.transformResponse(&chatResp), nil
}

// Model returns the model being used
func (o *openAIImpl) Model() string {
	return o.model
}

// transformRequest converts the request to OpenAI wire format
func (o *openAIImpl) transformRequest(req *Request) *chatRequest {
	chatReq := &chatRequest{
		Model:       o.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]chatMessage, 0),
	}

	if req.SystemInstruction != nil {
		systemMsg := transformMessage(req.SystemInstruction)
		systemMsg.Role = "system"
		chatReq.Messages = append(chatReq.Messages, systemMsg)
	}

	for _, msg := range req.Messages {
		chatReq.Messages = append(chatReq.Messages, transformMessage(&msg))
	}

	if len(req.Tools) > 0 {
		chatReq.Tools = make([]chatTool, len(req.Tools))
		for i, tool := range req.Tools {
			chatReq.Tools[i] = chatTool{
				Type: "function",
				Function: chatFunctionDecl{
					Name:        tool.Name,
					Description: tool.Description,
					Parameters:  tool.Parameters,
					Strict:      tool.Strict,
				},
			}
		}
	}

	if req.ForceTool != "" {
		chatReq.ToolChoice = chatToolChoice{
			Type:     "function",
			Function: chatToolChoiceName{Name: req.ForceTool},
		}
	}

	return chatReq
}

func transformMessage(msg *Content) chatMessage {
	chatMsg := chatMessage{Role: msg.Role}

	for _, part := range msg.Parts {
		if part.Text != "" {
			if chatMsg.Content != "" {
				chatMsg.Content += "\n"
			}
			chatMsg.Content += part.Text
		}
	}

	return chatMsg
}

// transformResponse converts the OpenAI wire response to the neutral format
func (o *openAIImpl) transformResponse(resp *chatResponse) *Response {
	if resp == nil || len(resp.Choices) == 0 {
		return &Response{Usage: &Usage{}}
	}

	choice := resp.Choices[0]
	message := Content{
		Role:  choice.Message.Role,
		Parts: make([]Part, 0),
	}

	if choice.Message.Content != "" {
		message.Parts = append(message.Parts, Part{Text: choice.Message.Content})
	}

	for _, toolCall := range choice.Message.ToolCalls {
		if toolCall.Type != "function" {
			continue
		}

		var args map[string]interface{}
		if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &args); err != nil {
			// Arguments that fail to parse surface as a call with no args;
			// the extractor treats that as a decode failure.
			args = nil
		}

		message.Parts = append(message.Parts, Part{
			FunctionCall: &FunctionCall{
				Name: toolCall.Function.Name,
				Args: args,
			},
		})
	}

	usage := &Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}

	return &Response{
		Content: message,
		Usage:   usage,
	}
}
