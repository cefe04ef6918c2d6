package filesstore

import (
	"errors"

	dbmodels "interview-tools-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.FileStorage) (id string, err error)
	GetByCandidate(candidateID string, fileType dbmodels.FileType) (rec *dbmodels.FileStorage, err error)
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

func (i impl) Create(rec dbmodels.FileStorage) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByCandidate(candidateID string, fileType dbmodels.FileType) (rec *dbmodels.FileStorage, err error) {
	err = i.db.
		Where("candidate_id = ?", candidateID).
		Where("type = ?", fileType).
		Order("created_at desc").
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

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.FileStorage{}).
		Error
}
