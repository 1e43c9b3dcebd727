package quiz_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/examportal/practice-lambda/internal/question"
	"github.com/examportal/practice-lambda/internal/quiz"
	"github.com/google/uuid"
)

var testUserID = uuid.New()

func makeQuestion(t *testing.T, category string, difficulty question.Difficulty, correct string) question.Question {
	t.Helper()

	opts, err := json.Marshal([]string{correct, "distrator B", "distrator C", "distrator D"})
	if err != nil {
		t.Fatalf("falha ao montar opções: %v", err)
	}

	return question.Question{
		ID:            uuid.New(),
		UserID:        testUserID,
		ServiceName:   "Amazon EC2",
		Question:      "Qual alternativa está correta?",
		Options:       opts,
		CorrectAnswer: correct,
		Category:      category,
		Difficulty:    difficulty,
		Explanation:   "Explicação da resposta.",
	}
}

func makePool(t *testing.T, n int, category string, difficulty question.Difficulty) []question.Question {
	t.Helper()

	pool := make([]question.Question, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, makeQuestion(t, category, difficulty, fmt.Sprintf("resposta %d", i)))
	}
	return pool
}

func TestNewSessionSelection(t *testing.T) {
	t.Run("CountSmallerThanPool", func(t *testing.T) {
		pool := makePool(t, 10, "Compute", question.DifficultyEasy)

		s, err := quiz.NewSession(testUserID, pool, quiz.Config{Count: 4})
		if err != nil {
			t.Fatalf("NewSession falhou: %v", err)
		}
		if s.Total() != 4 {
			t.Errorf("Total incorreto. Esperado: 4, Recebido: %d", s.Total())
		}
	})

	t.Run("CountLargerThanPool", func(t *testing.T) {
		pool := makePool(t, 5, "Compute", question.DifficultyEasy)

		s, err := quiz.NewSession(testUserID, pool, quiz.Config{Count: 100})
		if err != nil {
			t.Fatalf("NewSession falhou: %v", err)
		}
		if s.Total() != 5 {
			t.Errorf("Sessão deveria conter as 5 perguntas do pool, contém %d", s.Total())
		}
	})

	t.Run("InvalidCount", func(t *testing.T) {
		pool := makePool(t, 5, "Compute", question.DifficultyEasy)

		for _, count := range []int{0, -1} {
			if _, err := quiz.NewSession(testUserID, pool, quiz.Config{Count: count}); !errors.Is(err, quiz.ErrInvalidCount) {
				t.Errorf("count=%d deveria retornar ErrInvalidCount, retornou: %v", count, err)
			}
		}
	})

	t.Run("NoMatches", func(t *testing.T) {
		pool := makePool(t, 5, "Compute", question.DifficultyEasy)

		_, err := quiz.NewSession(testUserID, pool, quiz.Config{Category: "Storage", Count: 3})
		if !errors.Is(err, quiz.ErrNoQuestions) {
			t.Errorf("Filtro sem resultados deveria retornar ErrNoQuestions, retornou: %v", err)
		}
	})

	t.Run("EmptyPool", func(t *testing.T) {
		_, err := quiz.NewSession(testUserID, nil, quiz.Config{Count: 3})
		if !errors.Is(err, quiz.ErrNoQuestions) {
			t.Errorf("Pool vazio deveria retornar ErrNoQuestions, retornou: %v", err)
		}
	})

	t.Run("SelectionIsPermutation", func(t *testing.T) {
		pool := makePool(t, 8, "Compute", question.DifficultyEasy)

		s, err := quiz.NewSession(testUserID, pool, quiz.Config{Count: 8})
		if err != nil {
			t.Fatalf("NewSession falhou: %v", err)
		}

		seen := make(map[uuid.UUID]int)
		for _, q := range s.Questions() {
			seen[q.ID]++
		}
		if len(seen) != len(pool) {
			t.Fatalf("Sessão deveria conter cada pergunta exatamente uma vez. Esperado: %d distintas, Recebido: %d", len(pool), len(seen))
		}
		for _, q := range pool {
			if seen[q.ID] != 1 {
				t.Errorf("Pergunta %s aparece %d vezes na sessão", q.ID, seen[q.ID])
			}
		}
	})

	t.Run("FilteredSelection", func(t *testing.T) {
		pool := makePool(t, 5, "Compute", question.DifficultyEasy)
		pool = append(pool, makePool(t, 4, "Storage", question.DifficultyHard)...)
		pool = append(pool, makePool(t, 3, "Compute", question.DifficultyMedium)...)

		s, err := quiz.NewSession(testUserID, pool, quiz.Config{
			Category:   "Compute",
			Difficulty: "easy",
			Count:      3,
		})
		if err != nil {
			t.Fatalf("NewSession falhou: %v", err)
		}
		if s.Total() != 3 {
			t.Fatalf("Total incorreto. Esperado: 3, Recebido: %d", s.Total())
		}
		for _, q := range s.Questions() {
			if q.Category != "Compute" || q.Difficulty != question.DifficultyEasy {
				t.Errorf("Pergunta fora do filtro: categoria=%s dificuldade=%s", q.Category, q.Difficulty)
			}
		}
	})

	t.Run("AllPassesThrough", func(t *testing.T) {
		pool := makePool(t, 2, "Compute", question.DifficultyEasy)
		pool = append(pool, makePool(t, 2, "Storage", question.DifficultyHard)...)

		s, err := quiz.NewSession(testUserID, pool, quiz.Config{
			Category:   "all",
			Difficulty: "all",
			Count:      10,
		})
		if err != nil {
			t.Fatalf("NewSession falhou: %v", err)
		}
		if s.Total() != 4 {
			t.Errorf("Filtro 'all' deveria incluir todo o pool. Esperado: 4, Recebido: %d", s.Total())
		}
	})
}

func TestSubmitAnswer(t *testing.T) {
	newSingleQuestionSession := func(t *testing.T) (*quiz.Session, question.Question) {
		q := makeQuestion(t, "Compute", question.DifficultyEasy, "resposta certa")
		s, err := quiz.NewSession(testUserID, []question.Question{q}, quiz.Config{Count: 1})
		if err != nil {
			t.Fatalf("NewSession falhou: %v", err)
		}
		return s, q
	}

	t.Run("CorrectAnswerIncrementsScore", func(t *testing.T) {
		s, q := newSingleQuestionSession(t)

		feedback, err := s.SubmitAnswer(q.CorrectAnswer)
		if err != nil {
			t.Fatalf("SubmitAnswer falhou: %v", err)
		}
		if !feedback.Correct {
			t.Error("Resposta correta deveria retornar Correct=true")
		}
		if feedback.CorrectAnswer != q.CorrectAnswer {
			t.Errorf("CorrectAnswer incorreto no feedback: %s", feedback.CorrectAnswer)
		}
		if feedback.Explanation != q.Explanation {
			t.Errorf("Explanation incorreta no feedback: %s", feedback.Explanation)
		}
		if s.Score() != 1 {
			t.Errorf("Score deveria ser 1, é %d", s.Score())
		}
	})

	t.Run("WrongAnswerKeepsScore", func(t *testing.T) {
		s, _ := newSingleQuestionSession(t)

		feedback, err := s.SubmitAnswer("distrator B")
		if err != nil {
			t.Fatalf("SubmitAnswer falhou: %v", err)
		}
		if feedback.Correct {
			t.Error("Resposta errada deveria retornar Correct=false")
		}
		if s.Score() != 0 {
			t.Errorf("Score deveria ser 0, é %d", s.Score())
		}
	})

	t.Run("ArbitraryStringCountsAsWrong", func(t *testing.T) {
		s, _ := newSingleQuestionSession(t)

		feedback, err := s.SubmitAnswer("texto que não é opção")
		if err != nil {
			t.Fatalf("SubmitAnswer deveria tolerar opção arbitrária: %v", err)
		}
		if feedback.Correct || s.Score() != 0 {
			t.Error("Opção fora do conjunto deveria contar como errada")
		}
	})

	t.Run("SecondSubmitIsRejected", func(t *testing.T) {
		s, q := newSingleQuestionSession(t)

		if _, err := s.SubmitAnswer(q.CorrectAnswer); err != nil {
			t.Fatalf("SubmitAnswer falhou: %v", err)
		}

		_, err := s.SubmitAnswer(q.CorrectAnswer)
		if !errors.Is(err, quiz.ErrAlreadyAnswered) {
			t.Errorf("Segunda resposta deveria retornar ErrAlreadyAnswered, retornou: %v", err)
		}
		if s.Score() != 1 {
			t.Errorf("Score não pode mudar com resposta repetida. Esperado: 1, Recebido: %d", s.Score())
		}
	})
}

func TestAdvance(t *testing.T) {
	t.Run("BeforeAnsweringIsRejected", func(t *testing.T) {
		pool := makePool(t, 3, "Compute", question.DifficultyEasy)
		s, err := quiz.NewSession(testUserID, pool, quiz.Config{Count: 3})
		if err != nil {
			t.Fatalf("NewSession falhou: %v", err)
		}

		_, err = s.Advance()
		if !errors.Is(err, quiz.ErrNotAnswered) {
			t.Errorf("Advance antes de responder deveria retornar ErrNotAnswered, retornou: %v", err)
		}
		if s.Position() != 0 || s.Score() != 0 {
			t.Errorf("Estado não pode mudar: position=%d score=%d", s.Position(), s.Score())
		}
	})

	t.Run("MovesToNextQuestion", func(t *testing.T) {
		pool := makePool(t, 3, "Compute", question.DifficultyEasy)
		s, err := quiz.NewSession(testUserID, pool, quiz.Config{Count: 3})
		if err != nil {
			t.Fatalf("NewSession falhou: %v", err)
		}

		if _, err := s.SubmitAnswer("qualquer"); err != nil {
			t.Fatalf("SubmitAnswer falhou: %v", err)
		}
		completed, err := s.Advance()
		if err != nil {
			t.Fatalf("Advance falhou: %v", err)
		}
		if completed {
			t.Error("Sessão não deveria estar concluída com perguntas restantes")
		}
		if s.Position() != 1 {
			t.Errorf("Position deveria ser 1, é %d", s.Position())
		}

		current, answered, err := s.Current()
		if err != nil {
			t.Fatalf("Current falhou: %v", err)
		}
		if answered {
			t.Error("Pergunta recém-avançada deveria estar sem resposta")
		}
		if current.ID != s.Questions()[1].ID {
			t.Error("Current deveria retornar a pergunta na nova posição")
		}
	})

	t.Run("LastQuestionCompletes", func(t *testing.T) {
		q := makeQuestion(t, "Compute", question.DifficultyEasy, "certa")
		s, err := quiz.NewSession(testUserID, []question.Question{q}, quiz.Config{Count: 1})
		if err != nil {
			t.Fatalf("NewSession falhou: %v", err)
		}

		if _, err := s.SubmitAnswer("certa"); err != nil {
			t.Fatalf("SubmitAnswer falhou: %v", err)
		}
		completed, err := s.Advance()
		if err != nil {
			t.Fatalf("Advance falhou: %v", err)
		}
		if !completed {
			t.Fatal("Advance na última pergunta deveria concluir a sessão")
		}
		if s.Status() != quiz.StatusCompleted {
			t.Errorf("Status deveria ser COMPLETED, é %s", s.Status())
		}

		if _, err := s.SubmitAnswer("certa"); !errors.Is(err, quiz.ErrSessionCompleted) {
			t.Errorf("SubmitAnswer após conclusão deveria retornar ErrSessionCompleted, retornou: %v", err)
		}
		if _, err := s.Advance(); !errors.Is(err, quiz.ErrSessionCompleted) {
			t.Errorf("Advance após conclusão deveria retornar ErrSessionCompleted, retornou: %v", err)
		}
	})

	t.Run("SummaryOnlyWhenCompleted", func(t *testing.T) {
		pool := makePool(t, 2, "Compute", question.DifficultyEasy)
		s, err := quiz.NewSession(testUserID, pool, quiz.Config{Count: 2})
		if err != nil {
			t.Fatalf("NewSession falhou: %v", err)
		}

		if _, err := s.Summary(); !errors.Is(err, quiz.ErrNotCompleted) {
			t.Errorf("Summary antes da conclusão deveria retornar ErrNotCompleted, retornou: %v", err)
		}
	})
}

func TestFullRun(t *testing.T) {
	pool := makePool(t, 5, "Compute", question.DifficultyEasy)
	pool = append(pool, makePool(t, 4, "Storage", question.DifficultyHard)...)

	s, err := quiz.NewSession(testUserID, pool, quiz.Config{
		Category:   "Compute",
		Difficulty: "easy",
		Count:      3,
	})
	if err != nil {
		t.Fatalf("NewSession falhou: %v", err)
	}

	for s.Status() != quiz.StatusCompleted {
		current, _, err := s.Current()
		if err != nil {
			t.Fatalf("Current falhou: %v", err)
		}
		if _, err := s.SubmitAnswer(current.CorrectAnswer); err != nil {
			t.Fatalf("SubmitAnswer falhou: %v", err)
		}
		if _, err := s.Advance(); err != nil {
			t.Fatalf("Advance falhou: %v", err)
		}
	}

	summary, err := s.Summary()
	if err != nil {
		t.Fatalf("Summary falhou: %v", err)
	}
	if summary.Score != 3 || summary.Total != 3 || summary.Percentage != 100 {
		t.Errorf("Resumo incorreto: %+v", summary)
	}
	if summary.Message != "Outstanding!" {
		t.Errorf("Mensagem incorreta para 100%%: %s", summary.Message)
	}
}

func TestScoreNeverExceedsAnswered(t *testing.T) {
	pool := makePool(t, 4, "Compute", question.DifficultyEasy)
	s, err := quiz.NewSession(testUserID, pool, quiz.Config{Count: 4})
	if err != nil {
		t.Fatalf("NewSession falhou: %v", err)
	}

	answered := 0
	for s.Status() == quiz.StatusActive {
		if _, err := s.SubmitAnswer("sempre errada"); err != nil {
			t.Fatalf("SubmitAnswer falhou: %v", err)
		}
		answered++
		if s.Score() > answered {
			t.Fatalf("Score %d excede perguntas respondidas %d", s.Score(), answered)
		}
		if _, err := s.Advance(); err != nil {
			t.Fatalf("Advance falhou: %v", err)
		}
	}

	summary, err := s.Summary()
	if err != nil {
		t.Fatalf("Summary falhou: %v", err)
	}
	if summary.Score != 0 || summary.Percentage != 0 {
		t.Errorf("Errar tudo deveria resultar em 0: %+v", summary)
	}
	if summary.Message != "Need More Practice" {
		t.Errorf("Mensagem incorreta para 0%%: %s", summary.Message)
	}
}
