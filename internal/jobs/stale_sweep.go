package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/tekser/repair-tracker/internal/models"
)

// Audience values for notification fan-out.
const (
	AudienceAll     = "all"
	AudienceCreator = "creator"
)

type SweepStore interface {
	ListStale(ctx context.Context, before time.Time) ([]models.ServiceRecord, error)
	ListActiveUsers(ctx context.Context) ([]models.User, error)
	HasRecentNotification(ctx context.Context, recordID uint, since time.Time) (bool, error)
	CreateNotification(ctx context.Context, n *models.Notification) error
}

// StaleSweep periodically looks for undelivered service records that
// have not been touched for StaleAfter and notifies the configured
// audience. A record is notified at most once per window; a failed run
// is logged and retried on the next tick.
type StaleSweep struct {
	store      SweepStore
	interval   time.Duration
	timeout    time.Duration
	staleAfter time.Duration
	audience   string

	stopChan chan struct{}
}

func NewStaleSweep(store SweepStore, interval, timeout, staleAfter time.Duration, audience string) *StaleSweep {
	if audience != AudienceCreator {
		audience = AudienceAll
	}
	return &StaleSweep{
		store:      store,
		interval:   interval,
		timeout:    timeout,
		staleAfter: staleAfter,
		audience:   audience,
		stopChan:   make(chan struct{}),
	}
}

func (s *StaleSweep) Start() {
	go s.run()
	log.Printf("stale sweep started (interval=%s, staleAfter=%s, audience=%s)", s.interval, s.staleAfter, s.audience)
}

func (s *StaleSweep) Stop() {
	close(s.stopChan)
	log.Println("stale sweep stopped")
}

func (s *StaleSweep) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
			if err := s.RunOnce(ctx, time.Now()); err != nil {
				log.Println("stale sweep error:", err)
			}
			cancel()
		case <-s.stopChan:
			return
		}
	}
}

// RunOnce executes a single sweep pass.
func (s *StaleSweep) RunOnce(ctx context.Context, now time.Time) error {
	threshold := now.Add(-s.staleAfter)

	records, err := s.store.ListStale(ctx, threshold)
	if err != nil {
		return fmt.Errorf("list stale records: %w", err)
	}
	if len(records) == 0 {
		return nil
	}

	var users []models.User
	if s.audience == AudienceAll {
		users, err = s.store.ListActiveUsers(ctx)
		if err != nil {
			return fmt.Errorf("list active users: %w", err)
		}
	}

	created := 0
	for _, rec := range records {
		// One notification per record per window.
		seen, err := s.store.HasRecentNotification(ctx, rec.ID, threshold)
		if err != nil {
			return err
		}
		if seen {
			continue
		}

		days := daysBetween(rec.UpdatedAt, now)
		message := sweepMessage(&rec, days)

		for _, uid := range s.recipients(&rec, users) {
			n := &models.Notification{
				UserID:          uid,
				ServiceRecordID: rec.ID,
				Message:         message,
				OverdueDays:     days,
			}
			if err := s.store.CreateNotification(ctx, n); err != nil {
				return fmt.Errorf("create notification for record %d: %w", rec.ID, err)
			}
			created++
		}
	}

	if created > 0 {
		log.Printf("stale sweep: %d records stale, %d notifications created", len(records), created)
	}
	return nil
}

func (s *StaleSweep) recipients(rec *models.ServiceRecord, users []models.User) []uint {
	if s.audience == AudienceCreator {
		if rec.CreatedUserID == nil {
			return nil
		}
		return []uint{*rec.CreatedUserID}
	}

	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

func sweepMessage(rec *models.ServiceRecord, days int) string {
	customer := "-"
	if rec.Customer != nil {
		customer = rec.Customer.CompanyName
	}
	brand := "-"
	if rec.Brand != nil {
		brand = rec.Brand.Name
	}
	return fmt.Sprintf(
		"Service record #%d (%s / %s %s) has not been updated for %d days.",
		rec.ID, customer, brand, rec.Model, days,
	)
}

// daysBetween returns the whole-day calendar difference between two
// instants, ignoring the time of day.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
