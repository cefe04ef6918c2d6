package filestorage

import (
	"bytes"
	"context"
	"io"

	"interview-tools-backend/config"
	filesstore "interview-tools-backend/lib/file-storage/store"
	dbmodels "interview-tools-backend/models/db"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	UploadResume(ctx context.Context, candidateID, fileName, contentType string, file []byte) error
	GetResume(ctx context.Context, candidateID string) (fileName string, body []byte, err error)
}

var Instance Provider

func NewInstance(s3client *minio.Client, store filesstore.Provider) {
	Instance = &impl{
		s3client: s3client,
		store:    store,
	}
}

type impl struct {
	s3client *minio.Client
	store    filesstore.Provider
}

// UploadResume кладёт файл в объектное хранилище и фиксирует метаданные в БД.
// Прежнее резюме кандидата заменяется новым.
func (i impl) UploadResume(ctx context.Context, candidateID, fileName, contentType string, file []byte) error {
	old, err := i.store.GetByCandidate(candidateID, dbmodels.CandidateResume)
	if err != nil {
		return errors.Wrap(err, "ошибка поиска резюме")
	}
	rec := dbmodels.FileStorage{
		Name:        fileName,
		CandidateID: candidateID,
		Type:        dbmodels.CandidateResume,
		ContentType: contentType,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return errors.Wrap(err, "ошибка сохранения метаданных файла")
	}
	_, err = i.s3client.PutObject(ctx, config.Conf.S3.BucketName, id,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		if delErr := i.store.Delete(id); delErr != nil {
			log.WithField("file_id", id).WithError(delErr).Error("ошибка удаления метаданных файла")
		}
		return errors.Wrap(err, "ошибка загрузки файла в хранилище")
	}
	if old != nil {
		if err = i.removeFile(ctx, old.ID); err != nil {
			log.WithField("file_id", old.ID).WithError(err).Error("ошибка удаления прежнего резюме")
		}
	}
	return nil
}

func (i impl) GetResume(ctx context.Context, candidateID string) (fileName string, body []byte, err error) {
	rec, err := i.store.GetByCandidate(candidateID, dbmodels.CandidateResume)
	if err != nil {
		return "", nil, errors.Wrap(err, "ошибка поиска резюме")
	}
	if rec == nil {
		return "", nil, errors.New("у кандидата нет загруженного резюме")
	}
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, rec.ID, minio.GetObjectOptions{})
	if err != nil {
		return "", nil, errors.Wrap(err, "ошибка получения файла из хранилища")
	}
	defer object.Close()
	body, err = io.ReadAll(object)
	if err != nil {
		return "", nil, errors.Wrap(err, "ошибка чтения файла из хранилища")
	}
	return rec.Name, body, nil
}

func (i impl) removeFile(ctx context.Context, id string) error {
	err := i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, id, minio.RemoveObjectOptions{})
	if err != nil {
		return err
	}
	return i.store.Delete(id)
}
