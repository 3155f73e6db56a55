package service

import (
	"Yatube/internal/api/dto"
	"Yatube/internal/pkg/consts"
	"Yatube/internal/pkg/storage"
	"Yatube/internal/pkg/util"
	"bytes"
	"context"
	"fmt"
	log "log/slog"

	"github.com/google/uuid"
)

// ImageService 帖子图片的上传与缩略图
type ImageService interface {
	SavePostImage(ctx context.Context, upload *dto.ImageUpload) (string, error)
}

type ImageServiceImpl struct {
	store    storage.ObjectStore
	maxBytes int64
}

func NewImageService(store storage.ObjectStore, maxBytes int64) ImageService {
	return &ImageServiceImpl{
		store:    store,
		maxBytes: maxBytes,
	}
}

// SavePostImage 校验并保存原图与缩略图，返回原图 key；未上传时返回空串
func (s *ImageServiceImpl) SavePostImage(ctx context.Context, upload *dto.ImageUpload) (string, error) {
	if upload == nil || len(upload.Data) == 0 {
		return "", nil
	}
	if int64(len(upload.Data)) > s.maxBytes {
		return "", ErrImageTooLarge
	}

	img, err := util.DecodeImage(upload.Data)
	if err != nil {
		return "", ErrImageInvalid
	}

	name := util.SafeFilename(upload.Filename)
	key := consts.PostImagePrefix + name
	exists, err := s.store.Exists(ctx, key)
	if err != nil {
		return "", fmt.Errorf("check image key: %w", err)
	}
	if exists {
		// 同名文件追加短随机后缀
		name = util.WithSuffix(name, uuid.NewString()[:7])
		key = consts.PostImagePrefix + name
	}

	err = s.store.Put(ctx, key, bytes.NewReader(upload.Data), int64(len(upload.Data)), img.ContentType)
	if err != nil {
		return "", fmt.Errorf("put image: %w", err)
	}

	// 原图已写入但缩略图失败时，孤儿文件由定时清理任务回收
	thumb, err := util.Thumbnail(img, consts.ThumbWidth, consts.ThumbHeight)
	if err != nil {
		return "", err
	}
	err = s.store.Put(ctx, util.ThumbKey(key), bytes.NewReader(thumb), int64(len(thumb)), img.ContentType)
	if err != nil {
		return "", fmt.Errorf("put thumbnail: %w", err)
	}
	log.DebugContext(ctx, "post image stored", "key", key, "size", len(upload.Data))

	return key, nil
}
