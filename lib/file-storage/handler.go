package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"recruitment-backend/config"
	"recruitment-backend/db"
	filesdbstorage "recruitment-backend/lib/file-storage/store"
	s3client "recruitment-backend/s3"
	dbmodels "recruitment-backend/models/db"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

type Provider interface {
	Upload(ctx context.Context, spaceID, ownerID string, fileType dbmodels.FileType, fileName string, file []byte) (objectKey string, err error)
	Get(ctx context.Context, objectKey string) ([]byte, error)
	EnsureBucket(ctx context.Context) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		s3client:  s3client.Client,
		fileStore: filesdbstorage.NewInstance(db.DB),
	}
}

type impl struct {
	s3client  *minio.Client
	fileStore filesdbstorage.Provider
}

func (i impl) Upload(ctx context.Context, spaceID, ownerID string, fileType dbmodels.FileType, fileName string, file []byte) (string, error) {
	if i.s3client == nil {
		return "", errors.New("blob storage is not configured")
	}
	objectKey := fmt.Sprintf("%s/%s/%s", spaceID, fileType, uuid.NewString())
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return "", errors.Wrap(err, "blob upload failed")
	}
	rec := dbmodels.FileStorage{
		BaseSpaceModel: dbmodels.BaseSpaceModel{
			SpaceID: spaceID,
		},
		OwnerID:   ownerID,
		FileType:  fileType,
		ObjectKey: objectKey,
		FileName:  fileName,
	}
	_, err = i.fileStore.SaveFile(rec)
	if err != nil {
		return "", errors.Wrap(err, "file record save failed")
	}
	return objectKey, nil
}

func (i impl) Get(ctx context.Context, objectKey string) ([]byte, error) {
	if i.s3client == nil {
		return nil, errors.New("blob storage is not configured")
	}
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "blob read failed")
	}
	defer object.Close()
	return io.ReadAll(object)
}

func (i impl) EnsureBucket(ctx context.Context) error {
	if i.s3client == nil {
		return errors.New("blob storage is not configured")
	}
	bucketName := config.Conf.S3.BucketName
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}
