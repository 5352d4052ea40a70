package rag

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-collection-boot/ds"
	"github.com/svergara/ramos-rag/llm"
	"github.com/svergara/ramos-rag/model"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const classifyPromptTemplate = `Analiza esta conversación y identifica qué cursos son relevantes para responder al usuario.

CONVERSACIÓN:
%s

CURSOS DISPONIBLES:
%s

INSTRUCCIONES:
- Identifica cursos mencionados explícitamente o relacionados con el tema de la conversación
- Responde SOLO con siglas separadas por comas, sin espacios
- Si no hay cursos relevantes, responde con una cadena vacía
- NO incluyas explicaciones, puntos, ni texto adicional
- NO uses espacios entre las siglas

Ejemplo de formato correcto: ICS1113,IIC2233,FIS1533

SIGLAS:`

// Classifier asks the model which course codes the conversation is about.
type Classifier struct {
	llm llm.Client
}

func NewClassifier(client llm.Client) *Classifier {
	return &Classifier{llm: client}
}

// Classify returns the course codes relevant to the conversation. Every
// returned code belongs to the vocabulary; model output never reaches the
// database unchecked. A provider failure propagates, it is not retried here.
func (c *Classifier) Classify(ctx context.Context, conversation []model.Message, vocab *Vocabulary) ([]string, error) {
	prompt := fmt.Sprintf(classifyPromptTemplate, formatConversation(conversation), vocab.renderList())

	raw, err := c.llm.GenerateText(ctx, prompt)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "classify relevant courses: %v", err)
	}

	codes := ExtractCodes(raw, vocab.AllCodes())
	logger.Info("relevant courses identified", zap.Strings("codes", codes))
	return codes, nil
}

// formatConversation renders the messages as role-tagged lines.
func formatConversation(conversation []model.Message) string {
	lines := make([]string, 0, len(conversation))
	for _, msg := range conversation {
		lines = append(lines, fmt.Sprintf("%s: %s", strings.ToUpper(msg.Role), msg.Content))
	}
	return strings.Join(lines, "\n")
}

// ExtractCodes pulls valid course codes out of free-form model output.
//
// Two strategies run in fixed order. The comma-separated list the prompt asks
// for is tried first; each token is stripped of whitespace, periods and inner
// spaces and kept only if it belongs to the known set. When that yields
// nothing the raw text is scanned for each known code as a whole word, which
// covers models that ignore the format and answer in prose. Both passes
// validate against the same closed set, so invented codes never survive.
// The result carries no duplicates; order is not significant downstream.
func ExtractCodes(raw string, allCodes []string) []string {
	text := strings.ToUpper(strings.TrimSpace(raw))
	if text == "" || len(allCodes) == 0 {
		return nil
	}

	known := ds.NewSet[string]()
	for _, code := range allCodes {
		known.Add(code)
	}

	seen := ds.NewSet[string]()
	var found []string

	if strings.Contains(text, ",") {
		for _, token := range strings.Split(text, ",") {
			token = strings.TrimSpace(token)
			token = strings.ReplaceAll(token, ".", "")
			token = strings.ReplaceAll(token, " ", "")
			if token == "" || !known.Contains(token) || seen.Contains(token) {
				continue
			}
			seen.Add(token)
			found = append(found, token)
		}
	}

	if len(found) == 0 {
		for _, code := range allCodes {
			if seen.Contains(code) {
				continue
			}
			pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(code) + `\b`)
			if pattern.MatchString(text) {
				seen.Add(code)
				found = append(found, code)
			}
		}
	}

	return found
}
