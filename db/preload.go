package db

import (
	"recruitment-backend/config"
	authutils "recruitment-backend/lib/utils/auth-utils"
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"

	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	fillStages()
	spaceID := ensureSpace()
	if spaceID == "" {
		return
	}
	seedStaff(spaceID)
}

func fillStages() {
	for order, stageID := range models.StageOrder {
		rec := dbmodels.Stage{
			ID:         int(stageID),
			Name:       stageID.ToHuman(),
			StageOrder: order + 1,
		}
		err := DB.Where(dbmodels.Stage{ID: rec.ID}).FirstOrCreate(&rec).Error
		if err != nil {
			log.WithError(err).Error("stage dictionary preload failed")
			return
		}
	}
}

func ensureSpace() string {
	rec := dbmodels.Space{
		Name:     config.Conf.Preload.SpaceName,
		IsActive: true,
	}
	err := DB.Where(dbmodels.Space{Name: rec.Name}).FirstOrCreate(&rec).Error
	if err != nil {
		log.WithError(err).Error("space preload failed")
		return ""
	}
	return rec.ID
}

func seedStaff(spaceID string) {
	seeds := []struct {
		email    string
		password string
		role     models.UserRole
	}{
		{config.Conf.Preload.HREmail, config.Conf.Preload.HRPassword, models.UserRoleHR},
		{config.Conf.Preload.ManagementEmail, config.Conf.Preload.ManagementPassword, models.UserRoleManagement},
		{config.Conf.Preload.FMEmail, config.Conf.Preload.FMPassword, models.UserRoleFacilityManager},
		{config.Conf.Preload.CEOEmail, config.Conf.Preload.CEOPassword, models.UserRoleCEO},
	}
	for _, seed := range seeds {
		if seed.email == "" {
			log.Warnf("staff account with role %v not seeded, no email configured", seed.role.ToHuman())
			continue
		}
		existed := dbmodels.SpaceUser{}
		tx := DB.Where("email = ? and space_id = ?", seed.email, spaceID).Limit(1).Find(&existed)
		if tx.Error != nil {
			log.WithError(tx.Error).Error("staff preload failed")
			return
		}
		if tx.RowsAffected > 0 {
			continue
		}
		rec := dbmodels.SpaceUser{
			SpaceID:  spaceID,
			Email:    seed.email,
			Password: authutils.GetMD5Hash(seed.password),
			Role:     seed.role,
			IsActive: true,
		}
		if err := DB.Create(&rec).Error; err != nil {
			log.WithError(err).Error("staff preload failed")
			return
		}
	}
}
