// Package jobs runs the scheduled background work: the nightly sweep that
// archives projects past their hard expiry and reclaims their storage.
package jobs

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"

	"photostudio-backend/internal/logging"
	"photostudio-backend/internal/objectstore"
	"photostudio-backend/internal/store"
)

type Archiver struct {
	store   *store.Client
	objects *objectstore.Store
}

func NewArchiver(st *store.Client, objects *objectstore.Store) *Archiver {
	return &Archiver{store: st, objects: objects}
}

// Start schedules the daily sweep. The returned scheduler should be shut
// down when the server stops.
func (a *Archiver) Start() (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0))),
		gocron.NewTask(func() {
			a.Sweep(context.Background())
		}),
	)
	if err != nil {
		return nil, err
	}

	scheduler.Start()
	return scheduler, nil
}

// Sweep archives every project whose expiry has passed. Storage goes first:
// if the prefix delete fails the project stays unarchived and the next sweep
// retries it. Media rows go before the status flip for the same reason.
func (a *Archiver) Sweep(ctx context.Context) {
	log := logging.L()

	projects, err := a.store.ListExpiredActiveProjects(time.Now())
	if err != nil {
		log.Error().Err(err).Msg("archival sweep: list expired projects")
		return
	}
	if len(projects) == 0 {
		return
	}

	for _, project := range projects {
		plog := log.With().Str("project_id", project.ID.String()).Str("title", project.Title).Logger()

		if err := a.objects.DeletePrefix(ctx, objectstore.ProjectPrefix(project.ID)); err != nil {
			plog.Error().Err(err).Msg("archival sweep: delete storage prefix")
			continue
		}
		if err := a.store.DeleteMediaByProject(project.ID); err != nil {
			plog.Error().Err(err).Msg("archival sweep: delete media rows")
			continue
		}
		if err := a.store.ArchiveProject(project.ID); err != nil {
			plog.Error().Err(err).Msg("archival sweep: mark archived")
			continue
		}
		plog.Info().Msg("project archived")
	}
}
