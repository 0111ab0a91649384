package repository

import (
	"github.com/sahajranjan/jobportal/internal/model"
	"gorm.io/gorm"
)

type AssignedTestRepository interface {
	Create(assigned *model.AssignedTest) error
	FindByID(id uint) (*model.AssignedTest, error)
	FindByIDWithTest(id uint) (*model.AssignedTest, error)
	FindAllWithDetails() ([]model.AssignedTest, error)
	FindByCandidate(candidateID uint) ([]model.AssignedTest, error)
	Update(assigned *model.AssignedTest) error
	Complete(assigned *model.AssignedTest) (bool, error)
}

type assignedTestRepository struct {
	db *gorm.DB
}

func NewAssignedTestRepository(db *gorm.DB) AssignedTestRepository {
	return &assignedTestRepository{db: db}
}

func (r *assignedTestRepository) Create(assigned *model.AssignedTest) error {
	return r.db.Create(assigned).Error
}

func (r *assignedTestRepository) FindByID(id uint) (*model.AssignedTest, error) {
	var assigned model.AssignedTest
	if err := r.db.First(&assigned, id).Error; err != nil {
		return nil, err
	}
	return &assigned, nil
}

// FindByIDWithTest preloads the test and its questions in exam order. When
// the test has been deleted since assignment the preload leaves Test zeroed;
// callers must check Test.ID.
func (r *assignedTestRepository) FindByIDWithTest(id uint) (*model.AssignedTest, error) {
	var assigned model.AssignedTest
	err := r.db.
		Preload("Test.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_in_test ASC")
		}).
		Preload("Test").
		Preload("Answers").
		First(&assigned, id).Error
	if err != nil {
		return nil, err
	}
	return &assigned, nil
}

func (r *assignedTestRepository) FindAllWithDetails() ([]model.AssignedTest, error) {
	var assigned []model.AssignedTest
	err := r.db.
		Preload("Test").
		Preload("Candidate").
		Order("created_at DESC").
		Find(&assigned).Error
	return assigned, err
}

func (r *assignedTestRepository) FindByCandidate(candidateID uint) ([]model.AssignedTest, error) {
	var assigned []model.AssignedTest
	err := r.db.
		Preload("Test.Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_in_test ASC")
		}).
		Preload("Test").
		Preload("Answers").
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&assigned).Error
	return assigned, err
}

func (r *assignedTestRepository) Update(assigned *model.AssignedTest) error {
	// Save also inserts freshly appended AnswerResult rows.
	return r.db.Save(assigned).Error
}

// Complete finalizes a graded assignment in one transaction. The status
// predicate makes the Assigned -> Completed transition first-write-wins;
// it returns false when another submission already landed.
func (r *assignedTestRepository) Complete(assigned *model.AssignedTest) (bool, error) {
	won := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.AssignedTest{}).
			Where("id = ? AND status = ?", assigned.ID, model.AssignmentStatusAssigned).
			Updates(map[string]interface{}{
				"status":          assigned.Status,
				"completed_at":    assigned.CompletedAt,
				"score":           assigned.Score,
				"total_questions": assigned.TotalQuestions,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		won = true
		if len(assigned.Answers) == 0 {
			return nil
		}
		return tx.Create(&assigned.Answers).Error
	})
	return won, err
}
