package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"google.golang.org/api/googleapi"
)

const extractJSON = `{
  "title": "Algebra Basics",
  "questions": [
    {
      "question_text": "What is 2+2?",
      "option_a": "3",
      "option_b": "4",
      "option_c": "5",
      "option_d": "6",
      "correct_option": "B"
    },
    {
      "question_text": "What is x in x+1=2?",
      "option_a": "0",
      "option_b": "2",
      "option_c": "1",
      "option_d": "-1",
      "correct_option": null
    }
  ],
  "has_answers": true
}`

func TestParseExtractResponsePlainJSON(t *testing.T) {
	result, err := parseExtractResponse(extractJSON)
	if err != nil {
		t.Fatalf("parseExtractResponse: %v", err)
	}
	if result.Title != "Algebra Basics" {
		t.Errorf("title = %q, want %q", result.Title, "Algebra Basics")
	}
	if len(result.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(result.Questions))
	}
	if result.Questions[0].CorrectOption == nil || *result.Questions[0].CorrectOption != "B" {
		t.Errorf("first correct option = %v, want B", result.Questions[0].CorrectOption)
	}
	if result.Questions[1].CorrectOption != nil {
		t.Errorf("second correct option = %q, want nil", *result.Questions[1].CorrectOption)
	}
	if !result.HasAnswers {
		t.Error("has_answers not carried through")
	}
}

func TestParseExtractResponseStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + extractJSON + "\n```"
	result, err := parseExtractResponse(fenced)
	if err != nil {
		t.Fatalf("parseExtractResponse fenced: %v", err)
	}
	if len(result.Questions) != 2 {
		t.Errorf("questions = %d, want 2", len(result.Questions))
	}

	bare := "```\n" + extractJSON + "\n```"
	if _, err := parseExtractResponse(bare); err != nil {
		t.Errorf("parseExtractResponse bare fence: %v", err)
	}
}

func TestParseExtractResponseRejectsBadPayloads(t *testing.T) {
	if _, err := parseExtractResponse("this is not json"); err == nil {
		t.Error("non-JSON payload accepted")
	}
	if _, err := parseExtractResponse(`{"title": "Empty", "questions": [], "has_answers": false}`); err == nil {
		t.Error("payload with zero questions accepted")
	}
}

func TestWrapGenerateErrorClassifiesRateLimit(t *testing.T) {
	limited := wrapGenerateError(&googleapi.Error{Code: http.StatusTooManyRequests, Message: "quota exceeded"})
	if !errors.Is(limited, ErrRateLimited) {
		t.Errorf("429 from the API: err = %v, want ErrRateLimited", limited)
	}

	wrapped := wrapGenerateError(fmt.Errorf("rpc error: %w", &googleapi.Error{Code: http.StatusTooManyRequests}))
	if !errors.Is(wrapped, ErrRateLimited) {
		t.Errorf("wrapped 429: err = %v, want ErrRateLimited", wrapped)
	}

	for _, err := range []error{
		errors.New("connection reset"),
		&googleapi.Error{Code: http.StatusInternalServerError},
	} {
		if got := wrapGenerateError(err); errors.Is(got, ErrRateLimited) {
			t.Errorf("wrapGenerateError(%v) classified as rate limit", err)
		}
	}
}

func TestResponseTextEmptyCandidates(t *testing.T) {
	if got := responseText(nil); got != "" {
		t.Errorf("responseText(nil) = %q, want empty", got)
	}
}
