package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eclisbank/solenbank/internal/config"
	"github.com/eclisbank/solenbank/internal/domain"
	"github.com/eclisbank/solenbank/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var inFlight sync.Map

//go:generate mockgen -source=notify.go -destination=notify_mock.go -package=notify

type Repo interface {
	FindUnsent(ctx context.Context, limit uint32) ([]domain.Notification, error)
	MarkSent(ctx context.Context, id int64) error
}

// Payload is what the gateway webhook receives for each committed transfer;
// the gateway renders the receipt and tells the account holder.
type Payload struct {
	ReceiptNo string `json:"receipt_no"`
	AccountID int64  `json:"account_id"`
	CreatedAt string `json:"created_at"`
}

type Service struct {
	url            string
	repo           Repo
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, repo Repo, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.GatewayWebhook,
		repo:           repo,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Notify service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping service")
			return
		case <-ticker.C:
			s.processNotifications(ctx)
		}
	}
}

func (s *Service) processNotifications(ctx context.Context) {
	notifications, err := s.repo.FindUnsent(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch unsent notifications", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, n := range notifications {
		n := n

		if _, loaded := inFlight.LoadOrStore(n.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlight.Delete(n.ID)
				return s.deliver(ctx, n)
			})
			if err != nil {
				inFlight.Delete(n.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing notifications", zap.Error(err))
	}
}

func (s *Service) deliver(ctx context.Context, n domain.Notification) error {
	body, err := json.Marshal(Payload{
		ReceiptNo: n.ReceiptNo,
		AccountID: n.AccountID,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal notification %d: %w", n.ID, err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	url := s.url + "/api/notifications"
	var statusCode int

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, _, err = s.client.Post(url, headers, body)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to deliver notification %d after %d retries: %w", n.ID, maxRetries, err)
			}

			switch {
			case statusCode >= 200 && statusCode < 300:
				if err := s.repo.MarkSent(ctx, n.ID); err != nil {
					return fmt.Errorf("failed to mark notification %d sent: %w", n.ID, err)
				}
				return nil
			case statusCode == http.StatusTooManyRequests:
				zap.L().Warn("Gateway rate limit, retrying", zap.Int64("notificationID", n.ID), zap.Int("attempt", attempt))
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to deliver notification %d after %d retries", n.ID, maxRetries)
			default:
				zap.L().Error("Unexpected status code from gateway", zap.Int("status", statusCode), zap.Int64("notificationID", n.ID))
				return fmt.Errorf("unexpected status code %d for notification %d", statusCode, n.ID)
			}
		}
	}
	return nil
}
