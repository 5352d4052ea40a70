package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/svergara/ramos-rag/model"
)

type stubPipeline struct {
	answer string
	err    error
	calls  int
}

func (s *stubPipeline) Answer(_ context.Context, _ []model.Message) (string, error) {
	s.calls++
	return s.answer, s.err
}

func postChat(t *testing.T, cc *ChatController, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	cc.HandleChat(rec, req)
	return rec
}

func TestHandleChat_ReturnsPipelineAnswer(t *testing.T) {
	pipeline := &stubPipeline{answer: "El curso tiene carga intensa."}
	cc := &ChatController{pipeline: pipeline}

	rec := postChat(t, cc, `{"messages":[{"role":"user","content":"¿Qué tal Optimización?"}]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp model.ChatResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Response != "El curso tiene carga intensa." {
		t.Fatalf("unexpected response: %q", resp.Response)
	}
}

func TestHandleChat_RejectsInvalidJSON(t *testing.T) {
	cc := &ChatController{pipeline: &stubPipeline{}}

	rec := postChat(t, cc, `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHandleChat_RejectsEmptyConversation(t *testing.T) {
	pipeline := &stubPipeline{}
	cc := &ChatController{pipeline: pipeline}

	rec := postChat(t, cc, `{"messages":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if pipeline.calls != 0 {
		t.Fatal("pipeline must not run for an empty conversation")
	}
}

func TestHandleChat_RejectsTrailingAssistantMessage(t *testing.T) {
	pipeline := &stubPipeline{}
	cc := &ChatController{pipeline: pipeline}

	rec := postChat(t, cc, `{"messages":[{"role":"user","content":"hola"},{"role":"assistant","content":"hola!"}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if pipeline.calls != 0 {
		t.Fatal("pipeline must not run when the last message is not from the user")
	}
}

func TestHandleChat_PipelineFailureMapsTo500(t *testing.T) {
	cc := &ChatController{pipeline: &stubPipeline{err: errors.New("classification failed")}}

	rec := postChat(t, cc, `{"messages":[{"role":"user","content":"hola"}]}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "classification failed") {
		t.Fatal("internal error detail must not leak to the client")
	}
}
