package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"quizdesk/internal/dto"
	"quizdesk/internal/model"
)

func newAdminFixture() (*fakeQuizRepo, *fakeAttemptRepo, AdminQuizService) {
	quizRepo := newFakeQuizRepo()
	attemptRepo := newFakeAttemptRepo(quizRepo)
	return quizRepo, attemptRepo, NewAdminQuizService(quizRepo, attemptRepo)
}

func adminQuestion(correct *string) dto.AdminQuestionDTO {
	return dto.AdminQuestionDTO{
		QuestionText:  "What is 2+2?",
		OptionA:       "3",
		OptionB:       "4",
		OptionC:       "5",
		OptionD:       "6",
		CorrectOption: correct,
	}
}

func TestCreateQuizDraftAllowsMissingAnswers(t *testing.T) {
	_, _, svc := newAdminFixture()

	created, err := svc.CreateQuiz(dto.QuizCreateDTO{
		Title:            "Draft",
		MarksPerQuestion: 2,
		TotalTimeMinutes: 10,
		Questions:        []dto.AdminQuestionDTO{adminQuestion(nil)},
	})
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}
	if created.Status != model.QuizStatusDraft {
		t.Errorf("status = %q, want draft by default", created.Status)
	}
	if len(created.Questions) != 1 || created.Questions[0].CorrectOption != nil {
		t.Errorf("questions = %+v, want one with nil correct option", created.Questions)
	}
}

func TestCreateQuizPublishGate(t *testing.T) {
	_, _, svc := newAdminFixture()

	base := dto.QuizCreateDTO{
		Title:            "Gated",
		MarksPerQuestion: 2,
		TotalTimeMinutes: 10,
		Status:           model.QuizStatusPublished,
	}

	noQuestions := base
	if _, err := svc.CreateQuiz(noQuestions); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("publish with no questions: err = %v, want ErrInvalidInput", err)
	}

	missingAnswer := base
	missingAnswer.Questions = []dto.AdminQuestionDTO{adminQuestion(strPtr("B")), adminQuestion(nil)}
	if _, err := svc.CreateQuiz(missingAnswer); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("publish with unanswered question: err = %v, want ErrInvalidInput", err)
	}

	complete := base
	complete.Questions = []dto.AdminQuestionDTO{adminQuestion(strPtr("B")), adminQuestion(strPtr("C"))}
	created, err := svc.CreateQuiz(complete)
	if err != nil {
		t.Fatalf("publish with complete answers: %v", err)
	}
	if created.Status != model.QuizStatusPublished {
		t.Errorf("status = %q, want published", created.Status)
	}
}

func TestCreateQuizAssignsQuestionOrder(t *testing.T) {
	_, _, svc := newAdminFixture()

	questions := make([]dto.AdminQuestionDTO, 3)
	for i := range questions {
		questions[i] = adminQuestion(strPtr("A"))
	}
	created, err := svc.CreateQuiz(dto.QuizCreateDTO{
		Title:            "Ordered",
		MarksPerQuestion: 1,
		TotalTimeMinutes: 5,
		Questions:        questions,
	})
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}
	for i, q := range created.Questions {
		if q.QuestionOrder != i {
			t.Errorf("question %d has order %d", i, q.QuestionOrder)
		}
	}
}

func TestUpdateQuizPublishGateUsesExistingQuestions(t *testing.T) {
	_, _, svc := newAdminFixture()

	created, err := svc.CreateQuiz(dto.QuizCreateDTO{
		Title:            "Draft",
		MarksPerQuestion: 2,
		TotalTimeMinutes: 10,
		Questions:        []dto.AdminQuestionDTO{adminQuestion(nil)},
	})
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}

	// Publishing without touching the question set must still be gated on
	// the stored questions.
	update := dto.QuizUpdateDTO{
		Title:            "Draft",
		MarksPerQuestion: 2,
		TotalTimeMinutes: 10,
		Status:           model.QuizStatusPublished,
	}
	if _, err := svc.UpdateQuiz(created.ID, update); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("publish with stored unanswered question: err = %v, want ErrInvalidInput", err)
	}

	update.Questions = []dto.AdminQuestionDTO{adminQuestion(strPtr("D"))}
	updated, err := svc.UpdateQuiz(created.ID, update)
	if err != nil {
		t.Fatalf("UpdateQuiz: %v", err)
	}
	if updated.Status != model.QuizStatusPublished {
		t.Errorf("status = %q, want published", updated.Status)
	}
	if len(updated.Questions) != 1 || updated.Questions[0].CorrectOption == nil || *updated.Questions[0].CorrectOption != "D" {
		t.Errorf("questions not replaced: %+v", updated.Questions)
	}
}

func TestUpdateQuizNilQuestionsKeepsExisting(t *testing.T) {
	_, _, svc := newAdminFixture()

	created, err := svc.CreateQuiz(dto.QuizCreateDTO{
		Title:            "Keep",
		MarksPerQuestion: 2,
		TotalTimeMinutes: 10,
		Questions:        []dto.AdminQuestionDTO{adminQuestion(strPtr("A")), adminQuestion(strPtr("B"))},
	})
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}

	updated, err := svc.UpdateQuiz(created.ID, dto.QuizUpdateDTO{
		Title:            "Renamed",
		MarksPerQuestion: 3,
		TotalTimeMinutes: 15,
		Status:           model.QuizStatusDraft,
		AttemptsClosed:   boolPtr(true),
	})
	if err != nil {
		t.Fatalf("UpdateQuiz: %v", err)
	}
	if updated.Title != "Renamed" || updated.MarksPerQuestion != 3 {
		t.Errorf("metadata not updated: %+v", updated)
	}
	if !updated.AttemptsClosed {
		t.Error("attempts_closed not applied")
	}
	if len(updated.Questions) != 2 {
		t.Errorf("question count = %d, want 2 kept", len(updated.Questions))
	}
}

func TestUpdateQuizNotFound(t *testing.T) {
	_, _, svc := newAdminFixture()
	_, err := svc.UpdateQuiz(uuid.New(), dto.QuizUpdateDTO{
		Title: "X", MarksPerQuestion: 1, TotalTimeMinutes: 1, Status: model.QuizStatusDraft,
	})
	if !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestDeleteQuiz(t *testing.T) {
	quizRepo, _, svc := newAdminFixture()

	created, err := svc.CreateQuiz(dto.QuizCreateDTO{
		Title: "Gone", MarksPerQuestion: 1, TotalTimeMinutes: 1,
	})
	if err != nil {
		t.Fatalf("CreateQuiz: %v", err)
	}
	if err := svc.DeleteQuiz(created.ID); err != nil {
		t.Fatalf("DeleteQuiz: %v", err)
	}
	if _, ok := quizRepo.quizzes[created.ID]; ok {
		t.Error("quiz still stored after delete")
	}
	if err := svc.DeleteQuiz(created.ID); !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("second delete: err = %v, want ErrQuizNotFound", err)
	}
}

func TestDeleteQuizCascadesToAttempts(t *testing.T) {
	quizRepo, attemptRepo, svc := newAdminFixture()
	quiz := seedQuiz(t, quizRepo, model.QuizStatusPublished, 1, []*string{strPtr("A")})
	if err := attemptRepo.Create(&model.Attempt{QuizID: quiz.ID, UserName: "Asha", TotalMarks: 1}); err != nil {
		t.Fatalf("seeding attempt: %v", err)
	}

	if err := svc.DeleteQuiz(quiz.ID); err != nil {
		t.Fatalf("DeleteQuiz: %v", err)
	}

	stats, err := svc.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.QuizCount != 0 || stats.AttemptCount != 0 {
		t.Errorf("stats after delete = %+v, want no quizzes and no attempts", stats)
	}
}

func TestListAttemptsRanked(t *testing.T) {
	quizRepo, attemptRepo, svc := newAdminFixture()
	quiz := seedQuiz(t, quizRepo, model.QuizStatusPublished, 10, []*string{strPtr("A")})

	for _, a := range []struct {
		name  string
		score int
		time  *int
	}{
		{"second", 10, intPtr(50)},
		{"first", 10, intPtr(40)},
		{"third", 0, nil},
	} {
		if err := attemptRepo.Create(&model.Attempt{
			QuizID: quiz.ID, UserName: a.name, Score: a.score, TotalMarks: 10, TimeTakenSeconds: a.time,
		}); err != nil {
			t.Fatalf("seeding attempt: %v", err)
		}
	}

	ranked, err := svc.ListAttempts(quiz.ID)
	if err != nil {
		t.Fatalf("ListAttempts: %v", err)
	}
	want := []string{"first", "second", "third"}
	if len(ranked) != len(want) {
		t.Fatalf("attempts = %d, want %d", len(ranked), len(want))
	}
	for i, r := range ranked {
		if r.UserName != want[i] || r.Rank != i+1 {
			t.Errorf("ranked[%d] = %q rank %d, want %q rank %d", i, r.UserName, r.Rank, want[i], i+1)
		}
	}

	if _, err := svc.ListAttempts(uuid.New()); !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("unknown quiz: err = %v, want ErrQuizNotFound", err)
	}
}

func TestGetAttemptDetail(t *testing.T) {
	quizRepo, attemptRepo, svc := newAdminFixture()
	quiz := seedQuiz(t, quizRepo, model.QuizStatusPublished, 5, []*string{strPtr("A"), strPtr("B")})

	submission := NewSubmissionService(quizRepo, attemptRepo)
	submitted, err := submission.SubmitQuiz(quiz.ID, dto.AttemptSubmitDTO{
		UserName: "Asha",
		Answers:  map[uuid.UUID]string{quiz.Questions[0].ID: "A"},
	})
	if err != nil {
		t.Fatalf("SubmitQuiz: %v", err)
	}

	detail, err := svc.GetAttemptDetail(submitted.AttemptID)
	if err != nil {
		t.Fatalf("GetAttemptDetail: %v", err)
	}
	if detail.Attempt.QuizTitle != quiz.Title {
		t.Errorf("quiz title = %q, want %q", detail.Attempt.QuizTitle, quiz.Title)
	}
	if len(detail.Answers) != 2 {
		t.Fatalf("answer rows = %d, want 2", len(detail.Answers))
	}
	// Admin view includes the answer key.
	if detail.Answers[0].CorrectOption == nil || *detail.Answers[0].CorrectOption != "A" {
		t.Errorf("correct option missing from admin detail: %+v", detail.Answers[0])
	}

	if _, err := svc.GetAttemptDetail(uuid.New()); !errors.Is(err, ErrAttemptNotFound) {
		t.Errorf("unknown attempt: err = %v, want ErrAttemptNotFound", err)
	}
}

func TestGetStats(t *testing.T) {
	quizRepo, attemptRepo, svc := newAdminFixture()
	quiz := seedQuiz(t, quizRepo, model.QuizStatusPublished, 1, []*string{strPtr("A")})
	seedQuiz(t, quizRepo, model.QuizStatusDraft, 1, nil)

	for i := 0; i < 3; i++ {
		if err := attemptRepo.Create(&model.Attempt{QuizID: quiz.ID, UserName: "s", TotalMarks: 1}); err != nil {
			t.Fatalf("seeding attempt: %v", err)
		}
	}

	stats, err := svc.GetStats()
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.QuizCount != 2 || stats.AttemptCount != 3 {
		t.Errorf("stats = %+v, want 2 quizzes / 3 attempts", stats)
	}
}
