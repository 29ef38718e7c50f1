// Package extractor turns a base64-encoded fiscal note PDF into the raw
// key-value mapping produced by the generative model.
package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
)

const defaultModel = shared.ResponsesModel("gpt-5.1")

// ErrNoJSONFound is returned when the model output carries no JSON object.
var ErrNoJSONFound = errors.New("no JSON object found in model output")

type Extractor struct {
	client *openai.Client
	model  shared.ResponsesModel
}

func New(apiKey string) *Extractor {
	// One invocation is exactly one backend call; the SDK's default retry
	// policy would re-POST on 429/5xx before surfacing the error.
	client := openai.NewClient(option.WithAPIKey(apiKey), option.WithMaxRetries(0))
	return &Extractor{client: &client, model: defaultModel}
}

// ExtractFromBase64 submits the PDF and the extraction prompt to the model
// and parses the JSON object embedded in its free-form answer. Exactly one
// backend call is made per invocation; transport failures surface to the
// caller unmodified.
func (e *Extractor) ExtractFromBase64(ctx context.Context, pdfB64 string) (map[string]interface{}, error) {
	resp, err := e.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: e.model,
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(nfExtractSystemPrompt, responses.EasyInputMessageRoleSystem),
				responses.ResponseInputItemParamOfMessage(
					responses.ResponseInputMessageContentListParam{
						responses.ResponseInputContentUnionParam{
							OfInputText: &responses.ResponseInputTextParam{Text: nfExtractUserPrompt},
						},
						responses.ResponseInputContentUnionParam{
							OfInputFile: &responses.ResponseInputFileParam{
								Filename: openai.String("nota_fiscal.pdf"),
								FileData: openai.String("data:application/pdf;base64," + pdfB64),
							},
						},
					},
					responses.EasyInputMessageRoleUser,
				),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("call OpenAI: %w", err)
	}

	// OutputText concatenates the textual output parts and drops the rest.
	raw := resp.OutputText()

	jsonStr, err := ExtractJSONString(raw)
	if err != nil {
		return nil, err
	}

	var out map[string]interface{}
	if err := json.Unmarshal([]byte(jsonStr), &out); err != nil {
		return nil, fmt.Errorf("parse extracted JSON: %w", err)
	}

	return out, nil
}

// ExtractJSONString slices the substring between the first '{' and the last
// '}' of the model output.
func ExtractJSONString(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("%w: %q", ErrNoJSONFound, raw)
	}
	return raw[start : end+1], nil
}
