package notificationworker

import (
	"context"
	"time"

	"recruitment-backend/db"
	notificationstore "recruitment-backend/lib/notification/store"
	"recruitment-backend/lib/smtp"
	baseworker "recruitment-backend/lib/utils/base-worker"
	helpers "recruitment-backend/lib/utils/helpers"
	connectionhub "recruitment-backend/lib/ws/hub/connection-hub"
	wsmodels "recruitment-backend/models/ws"
)

const (
	firstRunDelay = 5 * time.Second
	runInterval   = 10 * time.Second
	batchSize     = 50
)

// StartWorker drains the notification outbox: rows are written inside business
// transactions and only delivered here, after those transactions committed.
func StartWorker(ctx context.Context) {
	w := worker{
		BaseImpl: *baseworker.NewInstance("notification_dispatch", firstRunDelay, runInterval),
		store:    notificationstore.NewInstance(db.DB),
	}
	go w.Run(ctx, w.dispatch)
}

type worker struct {
	baseworker.BaseImpl
	store notificationstore.Provider
}

func (w worker) dispatch(ctx context.Context) {
	logger := w.GetLogger()
	list, err := w.store.ListUnsent(batchSize)
	if err != nil {
		logger.WithError(err).Error("outbox read failed")
		return
	}
	sentIDs := make([]string, 0, len(list))
	for _, rec := range list {
		if helpers.IsContextDone(ctx) {
			break
		}
		if rec.Email != "" {
			if err := smtp.Instance.SendEMail(rec.Email, rec.Title, rec.Msg); err != nil {
				logger.WithError(err).
					WithField("notification_id", rec.ID).
					Error("notification send failed, will retry")
				continue
			}
		}
		if rec.UserID != "" && connectionhub.Instance.IsConnected(rec.UserID) {
			connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
				ToUserID: rec.UserID,
				Time:     rec.CreatedAt.Format("02.01.2006 15:04:05"),
				Code:     string(rec.Code),
				Msg:      rec.Msg,
			})
		}
		sentIDs = append(sentIDs, rec.ID)
	}
	if len(sentIDs) > 0 {
		if err := w.store.MarkSent(sentIDs); err != nil {
			logger.WithError(err).Error("outbox mark sent failed")
		}
	}
}
