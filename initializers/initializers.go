package initializers

import (
	"context"

	"recruitment-backend/config"
	"recruitment-backend/fiberlog"
	applicanthandler "recruitment-backend/lib/applicant"
	authhandler "recruitment-backend/lib/auth"
	boardhandler "recruitment-backend/lib/board"
	"recruitment-backend/lib/cachever"
	filestorage "recruitment-backend/lib/file-storage"
	jobofferhandler "recruitment-backend/lib/joboffer"
	notificationhandler "recruitment-backend/lib/notification"
	notificationworker "recruitment-backend/lib/notification/worker"
	pipelinehandler "recruitment-backend/lib/pipeline"
	scorehandler "recruitment-backend/lib/score"
	signaturehandler "recruitment-backend/lib/signature"
	connectionhub "recruitment-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	filestorage.NewHandler()
	cachever.NewHandler()
	authhandler.NewHandler()
	applicanthandler.NewHandler()
	pipelinehandler.NewHandler()
	scorehandler.NewHandler()
	// board consumes the version counter, keep it after cachever
	boardhandler.NewHandler()
	jobofferhandler.NewHandler()
	signaturehandler.NewHandler()
	notificationhandler.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// outbox drain, delivers what committed transactions queued
	notificationworker.StartWorker(ctx)
}
