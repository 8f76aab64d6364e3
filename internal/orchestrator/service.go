// Package orchestrator drives assessment sessions through their state
// machine: access check, one model call per step, persist on success.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/qihang-dev/qihang/internal/assessment"
	"github.com/qihang-dev/qihang/internal/parse"
	"github.com/qihang-dev/qihang/internal/prompt"
	"github.com/qihang-dev/qihang/internal/store"
)

// Generator produces model completions. The orchestrator only needs text in,
// text out; provider routing and response cleanup live behind this interface.
type Generator interface {
	Generate(ctx context.Context, providerName, instruction string) (string, error)
	Supports(providerName string) bool
}

// StartResponse is the outcome of StartAssessment. Either FirstQuestion or
// ExistingResult is set: a key whose assessment already finished gets its
// stored report back instead of a fresh run.
type StartResponse struct {
	SessionID      string               `json:"sessionId"`
	TotalQuestions int                  `json:"totalQuestions"`
	FirstQuestion  *assessment.Question `json:"firstQuestion,omitempty"`
	Completed      bool                 `json:"completed"`
	ExistingResult *assessment.Result   `json:"existingResult,omitempty"`
}

// SubmitRequest carries one answer.
type SubmitRequest struct {
	AnswerContent  string `json:"answerContent"`
	SelectedOption string `json:"selectedOption"`
}

// SubmitResponse is the outcome of SubmitAnswer: either the next question or,
// after the final answer, the synthesized report.
type SubmitResponse struct {
	Completed             bool                 `json:"completed"`
	CurrentQuestionNumber int                  `json:"currentQuestionNumber"`
	TotalQuestions        int                  `json:"totalQuestions"`
	NextQuestion          *assessment.Question `json:"nextQuestion,omitempty"`
	Result                *assessment.Result   `json:"result,omitempty"`
}

// Service orchestrates assessment sessions: it validates access, drives the
// question sequence one model call at a time, and persists state only after
// each call succeeds. A failed model call leaves the session exactly as it
// was, so the client can resubmit the same answer.
type Service struct {
	store    store.Store
	gen      Generator
	compiler *prompt.Compiler
	log      *zap.SugaredLogger

	// locks serializes operations per session. Session ids equal access
	// keys, so the map is fixed at construction from the allow-list.
	locks map[string]*sync.Mutex
}

// NewService builds the orchestrator. accessKeys is the closed allow-list;
// each key owns at most one live session.
func NewService(st store.Store, gen Generator, compiler *prompt.Compiler, accessKeys []string, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	locks := make(map[string]*sync.Mutex, len(accessKeys))
	for _, k := range accessKeys {
		locks[k] = &sync.Mutex{}
	}
	return &Service{
		store:    st,
		gen:      gen,
		compiler: compiler,
		log:      log,
		locks:    locks,
	}
}

// lockFor returns the mutex for a session id, or nil for ids outside the
// allow-list. Only allow-listed keys ever have sessions.
func (s *Service) lockFor(sessionID string) *sync.Mutex {
	return s.locks[sessionID]
}

// StartAssessment begins a new session for the access key, or returns the
// stored result when the key's assessment already finished. Nothing is
// persisted until the first question has been generated successfully.
func (s *Service) StartAssessment(ctx context.Context, key, providerName string) (*StartResponse, error) {
	mu := s.lockFor(key)
	if mu == nil {
		return nil, assessment.ErrInvalidAccessKey
	}
	if !s.gen.Supports(providerName) {
		return nil, fmt.Errorf("%w: %q", assessment.ErrUnsupportedProvider, providerName)
	}
	mu.Lock()
	defer mu.Unlock()

	existing, err := s.store.FindByKey(ctx, key)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if existing != nil && existing.Completed {
		s.log.Infow("assessment already completed, returning stored result", "key", key)
		return &StartResponse{
			SessionID:      existing.SessionID,
			TotalQuestions: s.compiler.TotalQuestions(),
			Completed:      true,
			ExistingResult: existing.Result,
		}, nil
	}

	instruction := s.compiler.QuestionInstruction(1, nil)
	raw, err := s.gen.Generate(ctx, providerName, instruction)
	if err != nil {
		return nil, err
	}
	question, err := parse.Question(raw)
	if err != nil {
		return nil, err
	}
	question.ID = uuid.NewString()
	question.QuestionNumber = 1

	session := &assessment.Session{
		SessionID:             key,
		Key:                   key,
		Provider:              providerName,
		CurrentQuestionNumber: 1,
		CreatedAt:             time.Now().UTC(),
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.log.Infow("assessment started",
		"session_id", session.SessionID,
		"provider", providerName,
		"total_questions", s.compiler.TotalQuestions())

	return &StartResponse{
		SessionID:      session.SessionID,
		TotalQuestions: s.compiler.TotalQuestions(),
		FirstQuestion:  question,
	}, nil
}

// SubmitAnswer records the answer to the current question and either
// generates the next question or, after the final answer, the full report.
// Session state is saved only after the model call succeeds.
func (s *Service) SubmitAnswer(ctx context.Context, sessionID string, req SubmitRequest) (*SubmitResponse, error) {
	mu := s.lockFor(sessionID)
	if mu == nil {
		return nil, assessment.ErrSessionNotFound
	}
	mu.Lock()
	defer mu.Unlock()

	session, err := s.store.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, assessment.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session.Completed {
		return nil, assessment.ErrSessionCompleted
	}

	current := session.CurrentQuestionNumber
	answers := append(append([]assessment.Answer(nil), session.Answers...), assessment.Answer{
		QuestionID:     fmt.Sprintf("%s-%d", sessionID, current),
		QuestionNumber: current,
		AnswerContent:  req.AnswerContent,
		SelectedOption: req.SelectedOption,
	})

	total := s.compiler.TotalQuestions()
	if current >= total {
		return s.finishAssessment(ctx, session, answers)
	}

	next := current + 1
	instruction := s.compiler.QuestionInstruction(next, transcript(answers))
	raw, err := s.gen.Generate(ctx, session.Provider, instruction)
	if err != nil {
		return nil, err
	}
	question, err := parse.Question(raw)
	if err != nil {
		return nil, err
	}
	question.ID = uuid.NewString()
	question.QuestionNumber = next

	session.Answers = answers
	session.CurrentQuestionNumber = next
	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.log.Debugw("answer recorded",
		"session_id", sessionID,
		"question_number", current,
		"next_question", next)

	return &SubmitResponse{
		CurrentQuestionNumber: next,
		TotalQuestions:        total,
		NextQuestion:          question,
	}, nil
}

// finishAssessment runs the analysis call and transitions the session to
// completed in a single save.
func (s *Service) finishAssessment(ctx context.Context, session *assessment.Session, answers []assessment.Answer) (*SubmitResponse, error) {
	instruction := s.compiler.AnalysisInstruction(transcript(answers))
	raw, err := s.gen.Generate(ctx, session.Provider, instruction)
	if err != nil {
		return nil, err
	}
	result, err := parse.Result(raw)
	if err != nil {
		return nil, err
	}

	session.Answers = answers
	session.Completed = true
	session.Result = result
	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.log.Infow("assessment completed",
		"session_id", session.SessionID,
		"answers", len(answers))

	return &SubmitResponse{
		Completed:             true,
		CurrentQuestionNumber: session.CurrentQuestionNumber,
		TotalQuestions:        s.compiler.TotalQuestions(),
		Result:                result,
	}, nil
}

// GetResult returns the report for a completed session.
func (s *Service) GetResult(ctx context.Context, sessionID string) (*assessment.Result, error) {
	mu := s.lockFor(sessionID)
	if mu == nil {
		return nil, assessment.ErrSessionNotFound
	}
	mu.Lock()
	defer mu.Unlock()

	session, err := s.store.FindByKey(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, assessment.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	if !session.Completed || session.Result == nil {
		return nil, assessment.ErrNotCompleted
	}
	return session.Result, nil
}

// transcript converts stored answers into compiler transcript entries.
func transcript(answers []assessment.Answer) []prompt.Answer {
	out := make([]prompt.Answer, len(answers))
	for i, a := range answers {
		out[i] = prompt.Answer{
			QuestionNumber: a.QuestionNumber,
			Content:        a.AnswerContent,
			SelectedOption: a.SelectedOption,
		}
	}
	return out
}
