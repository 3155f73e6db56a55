package cron

import (
	"Yatube/internal/api/config"
	"Yatube/internal/job"
	"Yatube/internal/pkg/storage"
	"Yatube/internal/repository/repotest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJob() *job.MediaCleanupJob {
	return job.NewMediaCleanupJob(repotest.NewStore(), storage.NewMemoryStore(""), time.Hour)
}

func TestManager_RegisterJobs(t *testing.T) {
	mgr := NewCronManager(config.CronConfig{MediaCleanSpec: "0 30 3 * * *", MediaCleanEnable: true}, newJob())
	require.NoError(t, mgr.RegisterJobs())
	assert.Equal(t, 1, mgr.Entries())
}

func TestManager_Disabled(t *testing.T) {
	mgr := NewCronManager(config.CronConfig{MediaCleanSpec: "0 30 3 * * *"}, newJob())
	require.NoError(t, mgr.RegisterJobs())
	assert.Equal(t, 0, mgr.Entries())
}

func TestManager_BadSpec(t *testing.T) {
	mgr := NewCronManager(config.CronConfig{MediaCleanSpec: "every day", MediaCleanEnable: true}, newJob())
	assert.Error(t, mgr.RegisterJobs())
}

func TestInitCron_StartStop(t *testing.T) {
	mgr := NewCronManager(config.CronConfig{MediaCleanSpec: "0 30 3 * * *", MediaCleanEnable: true}, newJob())
	require.NoError(t, InitCron(mgr))
	mgr.Stop()
}
