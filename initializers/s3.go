package initializers

import (
	"context"

	"interview-tools-backend/db"
	filestorage "interview-tools-backend/lib/file-storage"
	filesstore "interview-tools-backend/lib/file-storage/store"
	s3client "interview-tools-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	client, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}
	if err = client.MakeBucket(ctx); err != nil {
		log.WithError(err).Error("Ошибка создания бакета S3")
	}
	filestorage.NewInstance(client.Client(), filesstore.NewInstance(db.DB))
	log.Info("S3 клиент успешно инициализирован")
}
