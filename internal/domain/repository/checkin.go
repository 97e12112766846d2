package repository

import (
	"context"
	"time"

	"github.com/finpoint/finpoint/internal/domain/model"
)

// CheckInRepository stores daily check-ins. Create inserts the check-in row
// and the earned point entry in one transaction; a second check-in on the
// same calendar day fails with ErrAlreadyCheckedIn.
type CheckInRepository interface {
	Create(ctx context.Context, userID int64, day time.Time, points int64) (*model.CheckIn, error)
	ListRecent(ctx context.Context, userID int64, limit int) ([]model.CheckIn, error)
}
