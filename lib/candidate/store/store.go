package candidatestore

import (
	"errors"
	"fmt"

	dbmodels "interview-tools-backend/models/db"

	candidateapimodels "interview-tools-backend/models/api/candidate"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Candidate) (id string, err error)
	Save(rec dbmodels.Candidate) error
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (rec *dbmodels.Candidate, err error)
	List(filter candidateapimodels.CandidateFilter) (list []dbmodels.Candidate, rowCount int64, err error)
	Delete(id string) error
}

func NewInstance(db *gorm.DB) Provider {
	return &impl{
		db: db,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Candidate) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Save(rec dbmodels.Candidate) error {
	return i.db.Save(&rec).Error
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.Candidate{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) GetByID(id string) (rec *dbmodels.Candidate, err error) {
	err = i.db.
		Preload("Vacancy").
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) List(filter candidateapimodels.CandidateFilter) (list []dbmodels.Candidate, rowCount int64, err error) {
	tx := i.db.
		Model(&dbmodels.Candidate{}).
		Preload("Vacancy")
	if filter.VacancyID != "" {
		tx = tx.Where("vacancy_id = ?", filter.VacancyID)
	}
	if filter.Search != "" {
		search := fmt.Sprintf("%%%s%%", filter.Search)
		tx = tx.Where("first_name ILIKE ? OR last_name ILIKE ? OR middle_name ILIKE ?", search, search, search)
	}
	err = tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Order("last_name, first_name").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Candidate{}).
		Error
}
