package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// StorageKey is the fixed key the freelancer record lives under.
const StorageKey = "freelancerUser"

var ErrProfileNotFound = errors.New("profile not found")

// PortfolioItem is one showcased job.
type PortfolioItem struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ImageURL      string `json:"imageUrl"`
	Category      string `json:"category"`
	CompletedDate string `json:"completedDate"`
	ClientName    string `json:"clientName,omitempty"`
}

// Profile is the flat freelancer record shown on the dashboard.
type Profile struct {
	ID            string          `json:"id"`
	Email         string          `json:"email"`
	FullName      string          `json:"fullName"`
	Phone         string          `json:"phone"`
	Category      string          `json:"category"`
	Location      string          `json:"location"`
	Rating        float64         `json:"rating"`
	CompletedJobs int             `json:"completedJobs"`
	Earnings      int             `json:"earnings"`
	Portfolio     []PortfolioItem `json:"portfolio"`
}

// Store persists the single local profile record.
type Store interface {
	Load(ctx context.Context) (Profile, error)
	Save(ctx context.Context, p Profile) (Profile, error)
	Delete(ctx context.Context) error
	Close() error
}

// assignIDs gives the record and each portfolio item an identifier when the
// client did not supply one.
func assignIDs(p Profile, now time.Time) Profile {
	if strings.TrimSpace(p.ID) == "" {
		p.ID = newID(now)
	}
	if p.Portfolio == nil {
		p.Portfolio = []PortfolioItem{}
	}
	items := make([]PortfolioItem, len(p.Portfolio))
	for i, item := range p.Portfolio {
		if strings.TrimSpace(item.ID) == "" {
			item.ID = newID(now)
		}
		items[i] = item
	}
	p.Portfolio = items
	return p
}

func newID(now time.Time) string {
	return ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()
}
