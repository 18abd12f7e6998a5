package resolver

import (
	"context"
	"time"

	"rosterbid/internal/apperr"
	"rosterbid/internal/domain"
	"rosterbid/internal/logx"
	"rosterbid/internal/service/preference"
)

// Resolution is the full outcome of resolving one site: the assignment set,
// the terminal unresolved pools, and the cleaned preference lists the
// reporting layer classifies against.
type Resolution struct {
	Scope             domain.Scope
	AutoAssign        bool
	Assignments       []domain.Assignment
	UnassignedDrivers []int64
	OpenJobs          []int64
	Preferences       map[int64][]int64
}

// Service - service for resolving a site's assignments from a consistent
// snapshot, with content-keyed memoization.
type Service struct {
	snap             snapshotSource
	logger           logx.Logger
	operationTimeout time.Duration
	memo             *memoCache
	resolutions      counter
	memoHits         counter
}

// NewService creates a resolver Service. Counters may be nil.
func NewService(snap snapshotSource, logger logx.Logger, timeout time.Duration, memoEntries int, resolutions, memoHits counter) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		snap:             snap,
		logger:           logger,
		operationTimeout: timeout,
		memo:             newMemoCache(memoEntries),
		resolutions:      resolutions,
		memoHits:         memoHits,
	}
}

// ResolveSite loads a consistent snapshot for the scope and computes its
// assignment set. The computation is pure; two concurrent calls never
// coordinate beyond the memo cache.
func (s *Service) ResolveSite(ctx context.Context, scope domain.Scope) (Resolution, error) {
	if !scope.Valid() {
		return Resolution{}, apperr.ErrInvalid
	}

	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()

	snap, err := s.snap.Load(ctx, scope)
	if err != nil {
		return Resolution{}, err
	}

	key := Fingerprint(snap)
	if cached, ok := s.memo.get(key); ok {
		if s.memoHits != nil {
			s.memoHits.Inc()
		}
		return cached, nil
	}

	res := resolveSnapshot(snap)
	s.memo.put(key, res)
	if s.resolutions != nil {
		s.resolutions.Inc()
	}

	s.logger.Info("site resolved",
		logx.String("event", "site_resolved"),
		logx.Int64("company_id", scope.CompanyID),
		logx.Int64("site_id", scope.SiteID),
		logx.Bool("auto_assign", snap.AutoAssign),
		logx.Int("drivers", len(snap.Drivers)),
		logx.Int("jobs", len(snap.Jobs)),
		logx.Int("assignments", len(res.Assignments)),
		logx.Int("unassigned_drivers", len(res.UnassignedDrivers)),
		logx.Int("open_jobs", len(res.OpenJobs)),
	)

	return res, nil
}

// resolveSnapshot runs the cleaning step and the claim passes over one
// snapshot. Split out so tests can drive it without a store.
func resolveSnapshot(snap *domain.Snapshot) Resolution {
	latest := preference.LatestPerDriver(snap.Submissions)
	cleaned := preference.CleanLists(latest, snap.Jobs)

	out := Resolve(Input{
		Drivers:     snap.Drivers,
		Jobs:        snap.Jobs,
		Preferences: cleaned,
		Manual:      snap.Manual,
		AutoAssign:  snap.AutoAssign,
	})

	return Resolution{
		Scope:             snap.Scope,
		AutoAssign:        snap.AutoAssign,
		Assignments:       out.Assignments,
		UnassignedDrivers: out.UnassignedDrivers,
		OpenJobs:          out.OpenJobs,
		Preferences:       cleaned,
	}
}
