package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/finpoint/finpoint/internal/domain/model"
)

// FinanceFacade exposes the subset of application functionality required by
// the reminder worker.
type FinanceFacade interface {
	DebtsDueSoon(ctx context.Context, deadline time.Time, limit int) ([]model.DebtNote, error)
	Notify(ctx context.Context, userID int64, title, description string, link *string, dedupKey string) (bool, error)
}

// ReminderProcessor periodically scans for debt notes approaching their
// repayment date and pushes alerts through the notification dedup gate. The
// dedup key makes repeated scans of the same note on the same day no-ops,
// so the poll interval can be arbitrarily short.
type ReminderProcessor struct {
	facade       FinanceFacade
	pollInterval time.Duration
	dueWindow    time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.DebtNote
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewReminderProcessor constructs the reminder worker pool.
func NewReminderProcessor(facade FinanceFacade, pollInterval, dueWindow time.Duration, batchSize, workers int, logger *slog.Logger) *ReminderProcessor {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &ReminderProcessor{
		facade:       facade,
		pollInterval: pollInterval,
		dueWindow:    dueWindow,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.DebtNote, batchSize*workers),
	}
}

// Start launches background processing. The start context contributes
// values only; Stop is the single shutdown path, so the worker keeps
// polling after the caller's context is cancelled.
func (p *ReminderProcessor) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	p.cancel = cancel

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(runCtx)
	}

	p.wg.Add(1)
	go p.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (p *ReminderProcessor) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *ReminderProcessor) dispatch(ctx context.Context) {
	defer p.wg.Done()
	defer close(p.jobs)
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndDispatch(ctx)
		}
	}
}

func (p *ReminderProcessor) fetchAndDispatch(ctx context.Context) {
	deadline := time.Now().Add(p.dueWindow)
	notes, err := p.facade.DebtsDueSoon(ctx, deadline, p.batchSize)
	if err != nil {
		p.logger.Error("fetch due debts failed", slog.String("error", err.Error()))
		return
	}
	for _, note := range notes {
		select {
		case <-ctx.Done():
			return
		case p.jobs <- note:
		}
	}
}

func (p *ReminderProcessor) worker(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case note, ok := <-p.jobs:
			if !ok {
				return
			}
			p.remind(ctx, note)
		}
	}
}

func (p *ReminderProcessor) remind(ctx context.Context, note model.DebtNote) {
	if note.RepaymentDate == nil {
		return
	}

	due := model.DateOf(*note.RepaymentDate)
	key := fmt.Sprintf("debt-due:%d:%s", note.ID, due.Format("2006-01-02"))
	title := fmt.Sprintf("Repayment due: %s", note.Counterparty)
	description := fmt.Sprintf("%d remaining, due %s", note.Outstanding(), due.Format("2006-01-02"))

	created, err := p.facade.Notify(ctx, note.UserID, title, description, nil, key)
	if err != nil {
		p.logger.Error("due reminder failed",
			slog.Int64("note", note.ID),
			slog.String("error", err.Error()),
		)
		return
	}
	if created {
		p.logger.Info("due reminder created", slog.Int64("note", note.ID), slog.String("due", due.Format("2006-01-02")))
	}
}
