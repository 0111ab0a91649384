package service

import (
	"github.com/sahajranjan/jobportal/internal/model"
	"gorm.io/gorm"
)

// In-memory repository stubs for service tests.

type stubAssignedRepo struct {
	rows          map[uint]*model.AssignedTest
	nextID        uint
	loseRace      bool
	completeCalls int
}

func newStubAssignedRepo() *stubAssignedRepo {
	return &stubAssignedRepo{rows: make(map[uint]*model.AssignedTest), nextID: 1}
}

func (s *stubAssignedRepo) add(row model.AssignedTest) *model.AssignedTest {
	if row.ID == 0 {
		row.ID = s.nextID
	}
	if row.ID >= s.nextID {
		s.nextID = row.ID + 1
	}
	s.rows[row.ID] = &row
	return &row
}

func (s *stubAssignedRepo) Create(a *model.AssignedTest) error {
	a.ID = s.nextID
	s.nextID++
	s.rows[a.ID] = a
	return nil
}

func (s *stubAssignedRepo) FindByID(id uint) (*model.AssignedTest, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *row
	return &copied, nil
}

func (s *stubAssignedRepo) FindByIDWithTest(id uint) (*model.AssignedTest, error) {
	return s.FindByID(id)
}

func (s *stubAssignedRepo) FindAllWithDetails() ([]model.AssignedTest, error) {
	out := make([]model.AssignedTest, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, *row)
	}
	return out, nil
}

func (s *stubAssignedRepo) FindByCandidate(candidateID uint) ([]model.AssignedTest, error) {
	var out []model.AssignedTest
	for _, row := range s.rows {
		if row.CandidateID == candidateID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (s *stubAssignedRepo) Update(a *model.AssignedTest) error {
	s.rows[a.ID] = a
	return nil
}

func (s *stubAssignedRepo) Complete(a *model.AssignedTest) (bool, error) {
	s.completeCalls++
	if s.loseRace {
		return false, nil
	}
	existing, ok := s.rows[a.ID]
	if !ok || existing.Status != model.AssignmentStatusAssigned {
		return false, nil
	}
	copied := *a
	s.rows[a.ID] = &copied
	return true, nil
}

type stubUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (s *stubUserRepo) add(u model.User) *model.User {
	if u.ID == 0 {
		u.ID = s.nextID
	}
	if u.ID >= s.nextID {
		s.nextID = u.ID + 1
	}
	s.users[u.ID] = &u
	return &u
}

func (s *stubUserRepo) Create(u *model.User) error {
	u.ID = s.nextID
	s.nextID++
	s.users[u.ID] = u
	return nil
}

func (s *stubUserRepo) FindByID(id uint) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *stubUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) Update(u *model.User) error {
	s.users[u.ID] = u
	return nil
}

func (s *stubUserRepo) FindAllByLastLogin() ([]model.User, error) {
	return s.all(), nil
}

func (s *stubUserRepo) FindAllByCreatedAt() ([]model.User, error) {
	return s.all(), nil
}

func (s *stubUserRepo) all() []model.User {
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out
}

func (s *stubUserRepo) CountByRole() (map[model.Role]int, error) {
	out := make(map[model.Role]int)
	for _, u := range s.users {
		out[u.Role]++
	}
	return out, nil
}

type stubTestRepo struct {
	tests  map[uint]*model.Test
	nextID uint
}

func newStubTestRepo() *stubTestRepo {
	return &stubTestRepo{tests: make(map[uint]*model.Test), nextID: 1}
}

func (s *stubTestRepo) add(t model.Test) *model.Test {
	if t.ID == 0 {
		t.ID = s.nextID
	}
	if t.ID >= s.nextID {
		s.nextID = t.ID + 1
	}
	s.tests[t.ID] = &t
	return &t
}

func (s *stubTestRepo) Create(t *model.Test) error {
	t.ID = s.nextID
	s.nextID++
	s.tests[t.ID] = t
	return nil
}

func (s *stubTestRepo) FindByID(id uint) (*model.Test, error) {
	t, ok := s.tests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (s *stubTestRepo) FindByIDWithQuestions(id uint) (*model.Test, error) {
	return s.FindByID(id)
}

func (s *stubTestRepo) FindAllWithQuestionCount() ([]struct {
	model.Test
	QuestionCount int
}, error) {
	out := make([]struct {
		model.Test
		QuestionCount int
	}, 0, len(s.tests))
	for _, t := range s.tests {
		out = append(out, struct {
			model.Test
			QuestionCount int
		}{Test: *t, QuestionCount: len(t.Questions)})
	}
	return out, nil
}

func (s *stubTestRepo) Update(t *model.Test) error {
	s.tests[t.ID] = t
	return nil
}

func (s *stubTestRepo) ReplaceQuestions(testID uint, questions []model.Question) error {
	t, ok := s.tests[testID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Questions = questions
	return nil
}

func (s *stubTestRepo) Delete(id uint) error {
	delete(s.tests, id)
	return nil
}

type stubJobRepo struct {
	jobs   map[uint]*model.Job
	nextID uint
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[uint]*model.Job), nextID: 1}
}

func (s *stubJobRepo) add(j model.Job) *model.Job {
	if j.ID == 0 {
		j.ID = s.nextID
	}
	if j.ID >= s.nextID {
		s.nextID = j.ID + 1
	}
	s.jobs[j.ID] = &j
	return &j
}

func (s *stubJobRepo) Create(j *model.Job) error {
	j.ID = s.nextID
	s.nextID++
	s.jobs[j.ID] = j
	return nil
}

func (s *stubJobRepo) FindByID(id uint) (*model.Job, error) {
	j, ok := s.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *j
	return &copied, nil
}

func (s *stubJobRepo) FindAllWithApplicantCount() ([]struct {
	model.Job
	ApplicantCount int
}, error) {
	out := make([]struct {
		model.Job
		ApplicantCount int
	}, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, struct {
			model.Job
			ApplicantCount int
		}{Job: *j})
	}
	return out, nil
}

func (s *stubJobRepo) Update(j *model.Job) error {
	s.jobs[j.ID] = j
	return nil
}

func (s *stubJobRepo) Delete(id uint) error {
	delete(s.jobs, id)
	return nil
}

type stubApplicationRepo struct {
	apps   map[uint]*model.Application
	nextID uint
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{apps: make(map[uint]*model.Application), nextID: 1}
}

func (s *stubApplicationRepo) add(a model.Application) *model.Application {
	if a.ID == 0 {
		a.ID = s.nextID
	}
	if a.ID >= s.nextID {
		s.nextID = a.ID + 1
	}
	s.apps[a.ID] = &a
	return &a
}

func (s *stubApplicationRepo) Create(a *model.Application) error {
	a.ID = s.nextID
	s.nextID++
	s.apps[a.ID] = a
	return nil
}

func (s *stubApplicationRepo) FindByID(id uint) (*model.Application, error) {
	a, ok := s.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	return &copied, nil
}

func (s *stubApplicationRepo) FindAll() ([]model.Application, error) {
	out := make([]model.Application, 0, len(s.apps))
	for _, a := range s.apps {
		out = append(out, *a)
	}
	return out, nil
}

func (s *stubApplicationRepo) FindByCandidate(candidateID uint) ([]model.Application, error) {
	var out []model.Application
	for _, a := range s.apps {
		if a.CandidateID == candidateID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *stubApplicationRepo) FindByJobAndCandidate(jobID, candidateID uint) (*model.Application, error) {
	for _, a := range s.apps {
		if a.JobID == jobID && a.CandidateID == candidateID {
			copied := *a
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubApplicationRepo) Update(a *model.Application) error {
	s.apps[a.ID] = a
	return nil
}

func (s *stubApplicationRepo) Delete(id uint) error {
	delete(s.apps, id)
	return nil
}

func (s *stubApplicationRepo) CountPerCandidate() (map[uint]int, error) {
	out := make(map[uint]int)
	for _, a := range s.apps {
		out[a.CandidateID]++
	}
	return out, nil
}

type stubInterviewRepo struct {
	interviews map[uint]*model.Interview
	nextID     uint
}

func newStubInterviewRepo() *stubInterviewRepo {
	return &stubInterviewRepo{interviews: make(map[uint]*model.Interview), nextID: 1}
}

func (s *stubInterviewRepo) Create(iv *model.Interview) error {
	iv.ID = s.nextID
	s.nextID++
	s.interviews[iv.ID] = iv
	return nil
}

func (s *stubInterviewRepo) FindByID(id uint) (*model.Interview, error) {
	iv, ok := s.interviews[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *iv
	return &copied, nil
}

func (s *stubInterviewRepo) FindAll() ([]model.Interview, error) {
	out := make([]model.Interview, 0, len(s.interviews))
	for _, iv := range s.interviews {
		out = append(out, *iv)
	}
	return out, nil
}

func (s *stubInterviewRepo) FindByCandidate(candidateID uint) ([]model.Interview, error) {
	var out []model.Interview
	for _, iv := range s.interviews {
		if iv.CandidateID == candidateID {
			out = append(out, *iv)
		}
	}
	return out, nil
}

func (s *stubInterviewRepo) Update(iv *model.Interview) error {
	s.interviews[iv.ID] = iv
	return nil
}

func (s *stubInterviewRepo) Delete(id uint) error {
	delete(s.interviews, id)
	return nil
}
