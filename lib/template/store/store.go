package templatestore

import (
	"errors"

	dbmodels "interview-tools-backend/models/db"

	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Template) (id string, err error)
	Save(rec dbmodels.Template) error
	GetByID(id string) (rec *dbmodels.Template, err error)
	List() (list []dbmodels.Template, err error)
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

func (i impl) Create(rec dbmodels.Template) (id string, err error) {
	err = i.db.Create(&rec).Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// Save заменяет запись шаблона целиком - секции и вопросы лежат
// в jsonb колонке и отдельно не обновляются
func (i impl) Save(rec dbmodels.Template) error {
	return i.db.Save(&rec).Error
}

func (i impl) GetByID(id string) (rec *dbmodels.Template, err error) {
	err = i.db.
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

func (i impl) List() (list []dbmodels.Template, err error) {
	err = i.db.
		Model(&dbmodels.Template{}).
		Order("name").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Delete(id string) error {
	return i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Template{}).
		Error
}
