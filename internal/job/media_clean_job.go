package job

import (
	"Yatube/internal/pkg/consts"
	"Yatube/internal/pkg/metrics"
	"Yatube/internal/pkg/storage"
	"Yatube/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"
)

// MediaCleanupJobName 指标中的任务名
const MediaCleanupJobName = "media_cleanup"

// MediaCleanupJob 清理没有被任何帖子引用的图片及其缩略图
type MediaCleanupJob struct {
	postRepo repository.PostRepo
	store    storage.ObjectStore
	grace    time.Duration
	now      func() time.Time
}

func NewMediaCleanupJob(postRepo repository.PostRepo, store storage.ObjectStore, grace time.Duration) *MediaCleanupJob {
	return &MediaCleanupJob{
		postRepo: postRepo,
		store:    store,
		grace:    grace,
		now:      time.Now,
	}
}

func (s *MediaCleanupJob) Run() {
	start := time.Now()
	count, err := s.Cleanup(context.Background())
	metrics.RecordJobRun(MediaCleanupJobName, time.Since(start), err == nil)
	if err != nil {
		log.Error("media cleanup job failed", "err", err)
		return
	}
	if count > 0 {
		log.Info("media cleanup job finished", "cleaned_count", count)
	}
}

// Cleanup 返回删除的对象数量，宽限期内的对象保留
func (s *MediaCleanupJob) Cleanup(ctx context.Context) (int, error) {
	keys, err := s.postRepo.ListImageKeys(ctx)
	if err != nil {
		return 0, err
	}
	referenced := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		referenced[key] = struct{}{}
	}

	objects, err := s.store.List(ctx, consts.PostImagePrefix)
	if err != nil {
		return 0, err
	}

	deadline := s.now().Add(-s.grace)
	count := 0
	for _, obj := range objects {
		if obj.LastModified.After(deadline) {
			continue
		}

		source := obj.Key
		if strings.HasPrefix(obj.Key, consts.PostThumbPrefix) {
			source = consts.PostImagePrefix + strings.TrimPrefix(obj.Key, consts.PostThumbPrefix)
		}
		if _, ok := referenced[source]; ok {
			continue
		}

		if err = s.store.Delete(ctx, obj.Key); err != nil {
			log.Error("failed to delete orphan media", "key", obj.Key, "err", err)
			continue
		}
		count++
		log.Info("cleanup orphan media", "key", obj.Key)
	}

	return count, nil
}
