package jobs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"restaurant/internal/adapters/out/memory/preparationrepo"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/preparation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var openedAt = time.Date(2026, 3, 14, 11, 30, 0, 0, time.UTC)

func newJob(t *testing.T, repo *preparationrepo.Repository, schedule string) (*PreparationBacklogJob, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	clock := kernel.ClockFunc(func() time.Time { return openedAt.Add(10 * time.Minute) })

	job := NewPreparationBacklogJob(queries.NewGetPendingPreparationsQueryHandler(repo), schedule, clock, logger)
	return job, &buf
}

func appendSeed(t *testing.T, repo *preparationrepo.Repository, orderID kernel.UUID, at time.Time) *preparation.Snapshot {
	t.Helper()
	s, err := preparation.NewSeedSnapshot(repo.NextID(), orderID, at)
	require.NoError(t, err)
	require.NoError(t, repo.Append(t.Context(), s))
	return s
}

func appendStation(
	t *testing.T,
	repo *preparationrepo.Repository,
	from *preparation.Snapshot,
	station preparation.Station,
	at time.Time,
) *preparation.Snapshot {
	t.Helper()
	s, err := from.Advance(repo.NextID(), station, at)
	require.NoError(t, err)
	require.NoError(t, repo.Append(t.Context(), s))
	return s
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &record))
	return record
}

func TestPreparationBacklogJob_ReportsOldestPendingOrder(t *testing.T) {
	repo := preparationrepo.NewRepository()
	job, buf := newJob(t, repo, DefaultBacklogSchedule)

	waiting := kernel.NewUUID()
	s := appendSeed(t, repo, waiting, openedAt)
	appendStation(t, repo, s, preparation.Fries, openedAt.Add(2*time.Minute))

	recent := kernel.NewUUID()
	appendSeed(t, repo, recent, openedAt.Add(5*time.Minute))

	served := kernel.NewUUID()
	s = appendSeed(t, repo, served, openedAt)
	for _, station := range preparation.Stations() {
		s = appendStation(t, repo, s, station, openedAt.Add(time.Minute))
	}

	job.report(t.Context())

	record := lastRecord(t, buf)
	assert.Equal(t, "Kitchen backlog", record["msg"])
	assert.Equal(t, "preparation_backlog_job", record["component"])
	assert.Equal(t, float64(2), record["pending"])

	oldest, ok := record["oldest"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, waiting.String(), oldest["order_id"])
	assert.Equal(t, "8m0s", oldest["waiting"])
	assert.Equal(t, []any{"grill", "salad", "refill"}, oldest["missing"])
}

func TestPreparationBacklogJob_EmptyBacklog(t *testing.T) {
	job, buf := newJob(t, preparationrepo.NewRepository(), DefaultBacklogSchedule)

	job.report(t.Context())

	record := lastRecord(t, buf)
	assert.Equal(t, "Kitchen backlog is empty", record["msg"])
	assert.Equal(t, "DEBUG", record["level"])
}

func TestPreparationBacklogJob_StartStop(t *testing.T) {
	job, buf := newJob(t, preparationrepo.NewRepository(), DefaultBacklogSchedule)

	require.NoError(t, job.Start())
	job.Stop()

	assert.Contains(t, buf.String(), "Preparation backlog job started")
	assert.Contains(t, buf.String(), "Preparation backlog job stopped")
}

func TestPreparationBacklogJob_InvalidSchedule(t *testing.T) {
	job, _ := newJob(t, preparationrepo.NewRepository(), "every now and then")

	require.Error(t, job.Start())
}

func TestJobManager(t *testing.T) {
	handler := queries.NewGetPendingPreparationsQueryHandler(preparationrepo.NewRepository())
	logger := slog.New(slog.DiscardHandler)

	t.Run("disabled schedule starts nothing", func(t *testing.T) {
		jm := NewJobManager(handler, "", kernel.SystemClock{}, logger)
		require.NoError(t, jm.StartAll())
		assert.Nil(t, jm.backlogJob)
		jm.StopAll()
	})

	t.Run("starts and stops the backlog job", func(t *testing.T) {
		jm := NewJobManager(handler, DefaultBacklogSchedule, kernel.SystemClock{}, logger)
		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("invalid schedule fails to start", func(t *testing.T) {
		jm := NewJobManager(handler, "61 * * * * *", kernel.SystemClock{}, logger)
		require.ErrorContains(t, jm.StartAll(), "preparation backlog job")
	})
}
