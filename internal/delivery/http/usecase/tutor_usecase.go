package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/entity"
	"github.com/evandrarf/cryptolearn-be/internal/glossary"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

const (
	TutorSourceLLM      = "llm"
	TutorSourceGlossary = "glossary"
)

// ChatModel is satisfied by *llm.Client.
type ChatModel interface {
	Enabled() bool
	Chat(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error)
}

type TutorUsecase interface {
	Ask(ctx context.Context, term string, message string) (*entity.TutorResponse, error)
}

type TutorConfig struct {
	Catalog *glossary.Catalog
	Model   ChatModel
	Log     *logrus.Logger
}

type tutorUsecase struct {
	cfg TutorConfig
}

func NewTutorUsecase(cfg TutorConfig) TutorUsecase {
	return &tutorUsecase{cfg: cfg}
}

const tutorSystemPrompt = `You are a patient tutor explaining cryptocurrency slang and concepts to beginners.

Term: %s
Category: %s
Definition: %s
Example: %s

Answer the learner's question about this term in plain English, in at most three short paragraphs.
Stay factual, mention risks where relevant, and never give financial advice.`

// Ask answers from the model when one is configured. Without a model, or when
// the call fails, the reply is built from the glossary entry itself.
func (u *tutorUsecase) Ask(ctx context.Context, term string, message string) (*entity.TutorResponse, error) {
	record, ok := u.cfg.Catalog.Lookup(term)
	if !ok {
		return nil, fmt.Errorf("%w: %q", glossary.ErrUnknownTerm, term)
	}

	if u.cfg.Model != nil && u.cfg.Model.Enabled() {
		messages := []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: fmt.Sprintf(tutorSystemPrompt, record.Term, record.Category, record.Definition, record.Example),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: message,
			},
		}
		reply, err := u.cfg.Model.Chat(ctx, messages)
		if err == nil {
			return &entity.TutorResponse{Term: record.Term, Reply: reply, Source: TutorSourceLLM}, nil
		}
		u.cfg.Log.WithError(err).WithField("term", record.Term).Warn("tutor model failed, answering from glossary")
	}

	return &entity.TutorResponse{Term: record.Term, Reply: glossaryReply(record), Source: TutorSourceGlossary}, nil
}

func glossaryReply(r glossary.TermRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s, %s): %s", r.Term, r.Category, r.Difficulty, r.Definition)
	if r.Example != "" {
		fmt.Fprintf(&b, "\n\nExample: %s", r.Example)
	}
	if r.Importance == glossary.ImportanceCritical {
		b.WriteString("\n\nThis is a critical term: misunderstanding it can cost real money.")
	}
	return b.String()
}
