package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-api-boot/odm"
	"github.com/SaiNageswarS/go-api-boot/server"
	"github.com/svergara/ramos-rag/db"
	"github.com/svergara/ramos-rag/llm"
	"github.com/svergara/ramos-rag/middleware"
	"github.com/svergara/ramos-rag/model"
	"github.com/svergara/ramos-rag/rag"
	"go.uber.org/zap"
)

type answerer interface {
	Answer(ctx context.Context, conversation []model.Message) (string, error)
}

// ChatController exposes the RAG pipeline over POST /chat.
type ChatController struct {
	pipeline answerer
}

// ProvideChatController wires the pipeline onto the shared Mongo client and
// the model provider.
func ProvideChatController(mongo odm.MongoClient, client llm.Client) *ChatController {
	courses := db.NewCourseRepository(mongo, db.Tenant())
	return &ChatController{
		pipeline: rag.NewPipeline(client, courses),
	}
}

// HandleChat validates the conversation and runs the pipeline. The last
// message must come from the user; without it there is no question to answer.
func (cc *ChatController) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("failed to decode chat request", zap.Error(err))
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if len(req.Messages) == 0 {
		http.Error(w, "At least one message is required", http.StatusBadRequest)
		return
	}
	if last := req.Messages[len(req.Messages)-1]; last.Role != model.RoleUser {
		http.Error(w, "The last message must be from the user", http.StatusBadRequest)
		return
	}

	answer, err := cc.pipeline.Answer(r.Context(), req.Messages)
	if err != nil {
		logger.Error("chat pipeline failed", zap.Error(err))
		http.Error(w, "Failed to process the chat", http.StatusInternalServerError)
		return
	}

	writeJSON(w, model.ChatResponse{Response: answer})
}

func (cc *ChatController) Routes() []server.Route {
	return []server.Route{
		{
			Pattern: "/chat",
			Method:  http.MethodPost,
			Handler: middleware.RequestLogging(cc.HandleChat),
		},
	}
}
