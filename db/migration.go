package db

import (
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Space{}); err != nil {
		return errors.Wrap(err, "migration failed for Space")
	}
	if err := DB.AutoMigrate(&dbmodels.SpaceUser{}); err != nil {
		return errors.Wrap(err, "migration failed for SpaceUser")
	}
	if err := DB.AutoMigrate(&dbmodels.Stage{}); err != nil {
		return errors.Wrap(err, "migration failed for Stage")
	}
	if err := DB.AutoMigrate(&dbmodels.Applicant{}); err != nil {
		return errors.Wrap(err, "migration failed for Applicant")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicantPipeline{}); err != nil {
		return errors.Wrap(err, "migration failed for ApplicantPipeline")
	}
	if err := DB.AutoMigrate(&dbmodels.ApplicantPipelineScore{}); err != nil {
		return errors.Wrap(err, "migration failed for ApplicantPipelineScore")
	}
	if err := DB.AutoMigrate(&dbmodels.JobOffer{}); err != nil {
		return errors.Wrap(err, "migration failed for JobOffer")
	}
	if err := DB.AutoMigrate(&dbmodels.RecruitmentNote{}); err != nil {
		return errors.Wrap(err, "migration failed for RecruitmentNote")
	}
	if err := DB.AutoMigrate(&dbmodels.CacheVersion{}); err != nil {
		return errors.Wrap(err, "migration failed for CacheVersion")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "migration failed for Notification")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "migration failed for FileStorage")
	}
	log.Info("migrations finished")
	return nil
}
