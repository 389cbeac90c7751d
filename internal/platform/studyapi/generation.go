package studyapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/studyaid/internal/domain"
	"github.com/phrazzld/studyaid/internal/generation"
	"github.com/phrazzld/studyaid/internal/redact"
)

var _ generation.Gateway = (*Client)(nil)

type generateRequest struct {
	Value  domain.Project `json:"value"`
	Answer *string        `json:"answer,omitempty"`
}

type resultEnvelope struct {
	Result json.RawMessage `json:"result"`
}

// GenerateMnemonics implements generation.Gateway.
func (c *Client) GenerateMnemonics(ctx context.Context, project domain.Project) (*domain.AnnotatedContent, error) {
	var content *domain.AnnotatedContent
	err := c.generate(ctx, generation.ModeMnemonics, generateRequest{Value: project}, func(raw []byte) error {
		var err error
		content, err = domain.DecodeAnnotatedContent(raw)
		return err
	})
	if err != nil {
		return nil, err
	}
	return content, nil
}

// GenerateFlashcards implements generation.Gateway. An empty deck is a
// malformed response matching domain.ErrEmptyDeck.
func (c *Client) GenerateFlashcards(ctx context.Context, project domain.Project) (*domain.FlashcardDeck, error) {
	var deck *domain.FlashcardDeck
	err := c.generate(ctx, generation.ModeFlashcards, generateRequest{Value: project}, func(raw []byte) error {
		var err error
		deck, err = domain.DecodeFlashcardDeck(raw)
		return err
	})
	if err != nil {
		return nil, err
	}
	return deck, nil
}

// AnalyzeBlurt implements generation.Gateway. The answer is sent trimmed.
func (c *Client) AnalyzeBlurt(
	ctx context.Context,
	project domain.Project,
	answer string,
) (*domain.BlurtAnalysis, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, generation.ErrEmptyAnswer
	}

	var analysis *domain.BlurtAnalysis
	req := generateRequest{Value: project, Answer: &answer}
	err := c.generate(ctx, generation.ModeBlurt, req, func(raw []byte) error {
		var err error
		analysis, err = domain.DecodeBlurtAnalysis(raw)
		return err
	})
	if err != nil {
		return nil, err
	}
	return analysis, nil
}

// generate posts req to the mode's endpoint and hands the unwrapped result
// to decode. Every failure comes back as a *generation.Error.
func (c *Client) generate(
	ctx context.Context,
	mode generation.Mode,
	req generateRequest,
	decode func([]byte) error,
) error {
	log := c.logger.With("mode", string(mode))

	rep, err := c.do(ctx, http.MethodPost, "/"+string(mode), req)
	log = log.With("request_id", rep.requestID)

	var genErr *generation.Error
	var tErr *transportError
	switch {
	case errors.As(err, &tErr):
		genErr = generation.NewError(generation.KindUnreachable, mode, 0, tErr.err)
	case err != nil:
		genErr = generation.NewError(generation.KindMalformedResponse, mode, rep.status, err)
	case !rep.ok():
		genErr = generation.NewError(generation.KindRejectedByService, mode, rep.status, serviceDetail(rep))
	default:
		if decodeErr := decodeResult(rep.body, decode); decodeErr != nil {
			genErr = generation.NewError(generation.KindMalformedResponse, mode, rep.status, decodeErr)
		}
	}

	if genErr != nil {
		c.logFailure(ctx, log, rep, genErr)
		return genErr
	}

	log.InfoContext(ctx, "generation call completed",
		"status_code", rep.status,
		"duration_ms", rep.duration.Milliseconds())
	return nil
}

func decodeResult(body []byte, decode func([]byte) error) error {
	var env resultEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("failed to decode response envelope: %w", err)
	}
	if len(env.Result) == 0 || string(env.Result) == "null" {
		return errMissingResult
	}
	return decode(env.Result)
}

func (c *Client) logFailure(ctx context.Context, log *slog.Logger, rep *reply, genErr *generation.Error) {
	attrs := []any{
		"error_kind", genErr.Kind.String(),
		"status_code", rep.status,
		"duration_ms", rep.duration.Milliseconds(),
		"error", redact.Error(genErr),
	}

	switch genErr.Kind {
	case generation.KindMalformedResponse:
		var cve *domain.ContentValidationError
		if errors.As(genErr, &cve) {
			attrs = append(attrs, "validation_path", cve.Path)
		}
		attrs = append(attrs, "body_snippet", redact.Snippet(string(rep.body), snippetRunes))
		log.ErrorContext(ctx, "generation service returned a malformed response", attrs...)
	default:
		log.WarnContext(ctx, "generation call failed", attrs...)
	}
}
