package client

import (
	"context"
	"crypto/subtle"
	stderrors "errors"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/wanderlust/travel-client/client/fallback"
	"github.com/wanderlust/travel-client/client/internal/api"
	apierrors "github.com/wanderlust/travel-client/client/internal/errors"
	"github.com/wanderlust/travel-client/client/internal/rest"
	"github.com/wanderlust/travel-client/client/internal/types"
	"github.com/wanderlust/travel-client/client/internal/workqueue"
	"github.com/wanderlust/travel-client/devmode"
)

// AdminService owns the admin key lifecycle and dashboard authentication.
//
// There is no admin login endpoint: VerifyAdmin compares against the
// development credentials in package devmode.
type AdminService struct {
	c *Client

	mu            sync.Mutex
	authenticated bool
}

// AuthKey returns the admin key. When none is set, the key saved by a
// previous SetAuthKey is restored.
func (s *AdminService) AuthKey() string {
	if key := s.c.rest.AuthKey(); key != "" {
		return key
	}
	stored, ok, err := s.c.store.Get(rest.KeyAdminAuthKey)
	if err != nil {
		log.Warn().Err(err).Msg("reading stored admin key")
		return ""
	}
	if ok && stored != "" {
		if err := s.c.rest.SetAuthKey(stored); err != nil {
			log.Warn().Err(err).Msg("restoring admin key")
		}
		return stored
	}
	return ""
}

// SetAuthKey sets the admin key and keeps a copy for later sessions.
func (s *AdminService) SetAuthKey(key string) error {
	if err := s.c.rest.SetAuthKey(key); err != nil {
		return err
	}
	return s.c.store.Set(rest.KeyAdminAuthKey, key)
}

// IsAdmin reports whether a non-empty admin key is available.
func (s *AdminService) IsAdmin() bool { return s.AuthKey() != "" }

// Authenticated reports whether VerifyAdmin succeeded since the last Logout.
func (s *AdminService) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// VerifyAdmin checks the dashboard credentials and, when they match,
// installs the supplied key.
func (s *AdminService) VerifyAdmin(creds AdminCredentials) Result[struct{}] {
	ok := equal(creds.Username, devmode.AdminUsername) &
		equal(creds.Password, devmode.AdminPassword) &
		equal(creds.AuthKey, devmode.AdminKey)
	if ok != 1 {
		return types.Fail[struct{}]("Invalid admin credentials", nil)
	}
	if err := s.SetAuthKey(creds.AuthKey); err != nil {
		return types.Fail[struct{}]("Failed to verify admin credentials", err)
	}
	s.mu.Lock()
	s.authenticated = true
	s.mu.Unlock()
	res := types.OK(struct{}{})
	res.Message = "Successfully authenticated as admin"
	return res
}

// Logout forgets the saved admin key and clears the active one.
func (s *AdminService) Logout() error {
	s.mu.Lock()
	s.authenticated = false
	s.mu.Unlock()
	if err := s.c.store.Delete(rest.KeyAdminAuthKey); err != nil {
		return err
	}
	return s.c.rest.SetAuthKey("")
}

func equal(a, b string) int { return subtle.ConstantTimeCompare([]byte(a), []byte(b)) }

// SeedReport counts the outcome of Seed per record.
type SeedReport struct {
	Created int      `json:"created"`
	Failed  int      `json:"failed"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// Seed creates every package, travel and feedback record of ds through the
// client's work pool. Records of one resource are created in order under
// the resource name as key; resources run in parallel. A failed create is
// not retried. Hotels have no
// create endpoint and are counted as skipped. Seed returns once every
// submitted record has settled.
func (s *AdminService) Seed(ctx context.Context, ds fallback.Dataset) Result[SeedReport] {
	var (
		created int64
		mu      sync.Mutex
		report  = SeedReport{Skipped: len(ds.Hotels)}
	)
	ctx = withFailureReporter(ctx, func(key string, err error) {
		seedJobsTotal.WithLabelValues(key, "failed").Inc()
		mu.Lock()
		report.Failed++
		report.Errors = append(report.Errors, key+": "+err.Error())
		mu.Unlock()
	})

	var jobs []seedJob
	for _, p := range ds.Packages {
		p := p
		p.PackageID = 0
		jobs = append(jobs, seedJob{"packages", func(ctx context.Context) (bool, string, error) {
			r := api.CreatePackage(ctx, s.c.rest, p)
			return r.Success, r.Message, r.Err
		}})
	}
	for _, t := range ds.Travels {
		t := t
		t.TravelID = 0
		jobs = append(jobs, seedJob{"travels", func(ctx context.Context) (bool, string, error) {
			r := api.CreateTravel(ctx, s.c.rest, t)
			return r.Success, r.Message, r.Err
		}})
	}
	for _, f := range ds.Feedback {
		f := f
		f.FeedbackID = 0
		jobs = append(jobs, seedJob{"feedback", func(ctx context.Context) (bool, string, error) {
			r := api.SubmitFeedback(ctx, s.c.rest, f)
			return r.Success, r.Message, r.Err
		}})
	}

	var submitErr error
	keys := map[string]bool{}
	for _, j := range jobs {
		j := j
		err := s.c.exec.Submit(ctx, j.key, workqueue.JobFunc(func(ctx context.Context) error {
			ok, msg, cause := j.run(ctx)
			if ok {
				atomic.AddInt64(&created, 1)
				seedJobsTotal.WithLabelValues(j.key, "created").Inc()
				return nil
			}
			// Creates are not idempotent; a retry after a lost reply duplicates the record.
			if cause != nil {
				return apierrors.Final(cause)
			}
			return apierrors.Final(stderrors.New(msg))
		}))
		if err != nil {
			submitErr = err
			break
		}
		keys[j.key] = true
	}
	for key := range keys {
		if err := s.c.Flush(ctx, key); err != nil && submitErr == nil {
			submitErr = err
		}
	}

	mu.Lock()
	defer mu.Unlock()
	report.Created = int(atomic.LoadInt64(&created))
	switch {
	case submitErr != nil:
		r := types.Fail[SeedReport]("Seeding stopped early", submitErr)
		r.Data = report
		return r
	case report.Failed > 0:
		r := types.Fail[SeedReport]("Some records could not be created", nil)
		r.Data = report
		return r
	}
	res := types.OK(report)
	res.Message = "Demo data created"
	return res
}

type seedJob struct {
	key string
	run func(context.Context) (bool, string, error)
}

type failureReporterKey struct{}

// withFailureReporter attaches fn to ctx; the work pool calls it for jobs
// submitted with ctx that fail for good.
func withFailureReporter(ctx context.Context, fn func(key string, err error)) context.Context {
	return context.WithValue(ctx, failureReporterKey{}, fn)
}

// reportFailure is the error handler of the client's work pool.
func reportFailure(ctx context.Context, key string, err error) {
	if fn, ok := ctx.Value(failureReporterKey{}).(func(string, error)); ok {
		fn(key, err)
		return
	}
	log.Warn().Err(err).Str("key", key).Msg("background job failed")
}
