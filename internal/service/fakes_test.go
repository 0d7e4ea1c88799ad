package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizdesk/internal/dto"
	"quizdesk/internal/model"
	"quizdesk/internal/repository"
)

// In-memory repository fakes backing the service tests. They mirror the SQL
// ordering and error semantics of the real implementations closely enough
// for the services not to notice the difference.

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

type fakeQuizRepo struct {
	quizzes map[uuid.UUID]*model.Quiz
	// Questions displaced by ReplaceQuestions, kept the way soft-deleted rows
	// are: invisible to quiz reads but still resolvable for old attempts.
	removedQuestions map[uuid.UUID]model.Question
	attemptCounts    map[uuid.UUID]int
	attempts         *fakeAttemptRepo
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{
		quizzes:          map[uuid.UUID]*model.Quiz{},
		removedQuestions: map[uuid.UUID]model.Question{},
		attemptCounts:    map[uuid.UUID]int{},
	}
}

func (f *fakeQuizRepo) Create(quiz *model.Quiz) error {
	if quiz.ID == uuid.Nil {
		quiz.ID = uuid.New()
	}
	for i := range quiz.Questions {
		if quiz.Questions[i].ID == uuid.Nil {
			quiz.Questions[i].ID = uuid.New()
		}
		quiz.Questions[i].QuizID = quiz.ID
	}
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = time.Now()
	}
	stored := *quiz
	f.quizzes[quiz.ID] = &stored
	return nil
}

func (f *fakeQuizRepo) FindByID(id uuid.UUID) (*model.Quiz, error) {
	stored, ok := f.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	quiz := *stored
	quiz.Questions = nil
	return &quiz, nil
}

func (f *fakeQuizRepo) FindByIDWithQuestions(id uuid.UUID) (*model.Quiz, error) {
	stored, ok := f.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	quiz := *stored
	quiz.Questions = append([]model.Question(nil), stored.Questions...)
	sort.SliceStable(quiz.Questions, func(i, j int) bool {
		return quiz.Questions[i].QuestionOrder < quiz.Questions[j].QuestionOrder
	})
	return &quiz, nil
}

func (f *fakeQuizRepo) FindPublishedByIDWithQuestions(id uuid.UUID) (*model.Quiz, error) {
	quiz, err := f.FindByIDWithQuestions(id)
	if err != nil {
		return nil, err
	}
	if quiz.Status != model.QuizStatusPublished {
		return nil, gorm.ErrRecordNotFound
	}
	return quiz, nil
}

func (f *fakeQuizRepo) FindPublished(filter dto.QuizListFilter) ([]repository.QuizWithQuestionCount, error) {
	matches := func(field *string, want string) bool {
		return want == "" || (field != nil && *field == want)
	}
	var results []repository.QuizWithQuestionCount
	for _, stored := range f.quizzes {
		if stored.Status != model.QuizStatusPublished {
			continue
		}
		if !matches(stored.ClassLevel, filter.ClassLevel) ||
			!matches(stored.TestType, filter.TestType) ||
			!matches(stored.Subject, filter.Subject) {
			continue
		}
		quiz := *stored
		quiz.Questions = nil
		results = append(results, repository.QuizWithQuestionCount{
			Quiz:          quiz,
			QuestionCount: len(stored.Questions),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

func (f *fakeQuizRepo) FindAllWithCounts() ([]repository.QuizWithCounts, error) {
	var results []repository.QuizWithCounts
	for _, stored := range f.quizzes {
		quiz := *stored
		quiz.Questions = nil
		results = append(results, repository.QuizWithCounts{
			Quiz:          quiz,
			QuestionCount: len(stored.Questions),
			AttemptCount:  f.attemptCounts[stored.ID],
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

func (f *fakeQuizRepo) Update(quiz *model.Quiz) error {
	stored, ok := f.quizzes[quiz.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	updated := *quiz
	if updated.Questions == nil {
		updated.Questions = stored.Questions
	}
	f.quizzes[quiz.ID] = &updated
	return nil
}

func (f *fakeQuizRepo) ReplaceQuestions(quizID uuid.UUID, questions []model.Question) error {
	stored, ok := f.quizzes[quizID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for _, old := range stored.Questions {
		f.removedQuestions[old.ID] = old
	}
	for i := range questions {
		if questions[i].ID == uuid.Nil {
			questions[i].ID = uuid.New()
		}
		questions[i].QuizID = quizID
	}
	stored.Questions = questions
	return nil
}

func (f *fakeQuizRepo) Delete(id uuid.UUID) error {
	delete(f.quizzes, id)
	if f.attempts != nil {
		kept := f.attempts.attempts[:0]
		for _, a := range f.attempts.attempts {
			if a.QuizID != id {
				kept = append(kept, a)
			}
		}
		f.attempts.attempts = kept
	}
	return nil
}

func (f *fakeQuizRepo) Count() (int64, error) {
	return int64(len(f.quizzes)), nil
}

type fakeAttemptRepo struct {
	quizzes  *fakeQuizRepo
	attempts []*model.Attempt
	seq      int
}

func newFakeAttemptRepo(quizzes *fakeQuizRepo) *fakeAttemptRepo {
	repo := &fakeAttemptRepo{quizzes: quizzes}
	quizzes.attempts = repo
	return repo
}

func (f *fakeAttemptRepo) Create(attempt *model.Attempt) error {
	if attempt.ID == uuid.Nil {
		attempt.ID = uuid.New()
	}
	if attempt.SubmittedAt.IsZero() {
		// Monotonic timestamps so the submitted_at tie-break is stable.
		attempt.SubmittedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(f.seq) * time.Second)
	}
	f.seq++
	for i := range attempt.Answers {
		if attempt.Answers[i].ID == uuid.Nil {
			attempt.Answers[i].ID = uuid.New()
		}
		attempt.Answers[i].AttemptID = attempt.ID
	}
	stored := *attempt
	f.attempts = append(f.attempts, &stored)
	return nil
}

func (f *fakeAttemptRepo) FindByIDWithAnswers(id uuid.UUID) (*model.Attempt, error) {
	for _, stored := range f.attempts {
		if stored.ID != id {
			continue
		}
		attempt := *stored
		attempt.Answers = append([]model.Answer(nil), stored.Answers...)
		if quiz, ok := f.quizzes.quizzes[stored.QuizID]; ok {
			attempt.Quiz = *quiz
			attempt.Quiz.Questions = nil
			for i := range attempt.Answers {
				for _, q := range quiz.Questions {
					if q.ID == attempt.Answers[i].QuestionID {
						attempt.Answers[i].Question = q
						break
					}
				}
				if attempt.Answers[i].Question.ID == uuid.Nil {
					if q, ok := f.quizzes.removedQuestions[attempt.Answers[i].QuestionID]; ok {
						attempt.Answers[i].Question = q
					}
				}
			}
		}
		return &attempt, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// FindAllByQuizRanked mimics the SQL ordering: score descending, faster time
// first within a score, missing times last, then submission time.
func (f *fakeAttemptRepo) FindAllByQuizRanked(quizID uuid.UUID) ([]model.Attempt, error) {
	var results []model.Attempt
	for _, stored := range f.attempts {
		if stored.QuizID == quizID {
			results = append(results, *stored)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		switch {
		case a.TimeTakenSeconds == nil && b.TimeTakenSeconds == nil:
			return a.SubmittedAt.Before(b.SubmittedAt)
		case a.TimeTakenSeconds == nil:
			return false
		case b.TimeTakenSeconds == nil:
			return true
		case *a.TimeTakenSeconds != *b.TimeTakenSeconds:
			return *a.TimeTakenSeconds < *b.TimeTakenSeconds
		default:
			return a.SubmittedAt.Before(b.SubmittedAt)
		}
	})
	return results, nil
}

func (f *fakeAttemptRepo) FindAllByStudent(studentProfileID uuid.UUID) ([]model.Attempt, error) {
	var results []model.Attempt
	for _, stored := range f.attempts {
		if stored.StudentProfileID == nil || *stored.StudentProfileID != studentProfileID {
			continue
		}
		attempt := *stored
		if quiz, ok := f.quizzes.quizzes[stored.QuizID]; ok {
			attempt.Quiz = *quiz
			attempt.Quiz.Questions = nil
		}
		results = append(results, attempt)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SubmittedAt.After(results[j].SubmittedAt)
	})
	return results, nil
}

func (f *fakeAttemptRepo) Count() (int64, error) {
	return int64(len(f.attempts)), nil
}

type fakeStudentProfileRepo struct {
	profiles map[uuid.UUID]*model.StudentProfile
}

func newFakeStudentProfileRepo() *fakeStudentProfileRepo {
	return &fakeStudentProfileRepo{profiles: map[uuid.UUID]*model.StudentProfile{}}
}

func (f *fakeStudentProfileRepo) Create(profile *model.StudentProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	stored := *profile
	f.profiles[profile.ID] = &stored
	return nil
}

func (f *fakeStudentProfileRepo) FindByID(id uuid.UUID) (*model.StudentProfile, error) {
	stored, ok := f.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	profile := *stored
	return &profile, nil
}

func (f *fakeStudentProfileRepo) FindByPhone(phoneNumber string) (*model.StudentProfile, error) {
	for _, stored := range f.profiles {
		if stored.PhoneNumber == phoneNumber {
			profile := *stored
			return &profile, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeNotificationRepo struct {
	notifications []*model.Notification
	reads         map[uuid.UUID]map[uuid.UUID]bool
	seq           int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{reads: map[uuid.UUID]map[uuid.UUID]bool{}}
}

func (f *fakeNotificationRepo) Create(notification *model.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(f.seq) * time.Second)
	}
	f.seq++
	stored := *notification
	f.notifications = append(f.notifications, &stored)
	return nil
}

func (f *fakeNotificationRepo) Update(notification *model.Notification) error {
	for i, stored := range f.notifications {
		if stored.ID == notification.ID {
			updated := *notification
			f.notifications[i] = &updated
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeNotificationRepo) Delete(id uuid.UUID) error {
	for i, stored := range f.notifications {
		if stored.ID == id {
			f.notifications = append(f.notifications[:i], f.notifications[i+1:]...)
			break
		}
	}
	delete(f.reads, id)
	return nil
}

func (f *fakeNotificationRepo) FindByID(id uuid.UUID) (*model.Notification, error) {
	for _, stored := range f.notifications {
		if stored.ID == id {
			notification := *stored
			return &notification, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeNotificationRepo) FindAll() ([]model.Notification, error) {
	results := make([]model.Notification, 0, len(f.notifications))
	for _, stored := range f.notifications {
		results = append(results, *stored)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

func (f *fakeNotificationRepo) FindActive() ([]model.Notification, error) {
	all, _ := f.FindAll()
	results := all[:0]
	for _, n := range all {
		if n.IsActive {
			results = append(results, n)
		}
	}
	return results, nil
}

func (f *fakeNotificationRepo) MarkRead(notificationID, studentProfileID uuid.UUID) error {
	byStudent, ok := f.reads[notificationID]
	if !ok {
		byStudent = map[uuid.UUID]bool{}
		f.reads[notificationID] = byStudent
	}
	byStudent[studentProfileID] = true
	return nil
}

func (f *fakeNotificationRepo) FindReadIDs(studentProfileID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for notificationID, byStudent := range f.reads {
		if byStudent[studentProfileID] {
			ids = append(ids, notificationID)
		}
	}
	return ids, nil
}
