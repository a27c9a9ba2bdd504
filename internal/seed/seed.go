package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/omerl/unirest/internal/app/models"
	appRepos "github.com/omerl/unirest/internal/app/repositories"
)

// CreateDemoData inserts a couple of demo courses into an empty database so a
// fresh development instance has something to enrol against. Production
// deployments never call this.
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)

	existing, err := courseRepo.List(ctx, appRepos.CourseFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	lgr.Info().Msg("Empty course collection, creating demo courses...")

	linAlgDesc := "Vector spaces, matrices and linear maps"
	calcDesc := "Limits, derivatives and integrals"
	demoCourses := []*appModels.Course{
		{
			Faculty:     "Computer Science",
			Subject:     "Linear Algebra",
			Description: &linAlgDesc,
			Year:        2024,
			Semester:    appModels.SemesterFall,
			Points:      3,
		},
		{
			Faculty:     "Mathematics",
			Subject:     "Calculus 1",
			Description: &calcDesc,
			Year:        2024,
			Semester:    appModels.SemesterSpring,
			Points:      appModels.DefaultCoursePoints,
		},
	}

	for _, course := range demoCourses {
		if err := courseRepo.Create(ctx, course); err != nil {
			return err
		}
		lgr.Info().Str("subject", course.Subject).Str("courseID", course.ID).Msg("Demo course created")
	}

	return nil
}
