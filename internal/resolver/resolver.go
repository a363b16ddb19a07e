// Package resolver sequences a resolution run: authoritative lookup first,
// then the fallback tier cascade feeding the confidence aggregator.
package resolver

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/contact-cli/internal/aggregate"
	"github.com/sells-group/contact-cli/internal/model"
	"github.com/sells-group/contact-cli/internal/phone"
	"github.com/sells-group/contact-cli/internal/sourcepool"
	"github.com/sells-group/contact-cli/internal/sources"
	"github.com/sells-group/contact-cli/pkg/rocketreach"
)

// authoritativeSource labels results that came from the paid lookup API.
const authoritativeSource = "RocketReach API"

// Options configures orchestration policy.
type Options struct {
	// ScanAllTiers runs every fallback tier and lets the aggregator pick
	// the overall best candidate. Off by default: the cascade stops at the
	// first tier that produces any valid candidate, which bounds latency.
	ScanAllTiers bool
}

// Resolver resolves one contact query into a ResolvedContact. It never
// returns an error for well-formed input; with no usable source the result
// degrades to an empty phone at low confidence.
type Resolver struct {
	authoritative rocketreach.Client
	pool          *sourcepool.Pool
	catalog       *sources.Catalog
	opts          Options
}

// New creates a Resolver. authoritative may be nil when no paid lookup is
// configured; the cascade then starts at the first fallback tier.
func New(authoritative rocketreach.Client, pool *sourcepool.Pool, catalog *sources.Catalog, opts Options) *Resolver {
	if catalog == nil {
		catalog = sources.Default()
	}
	return &Resolver{
		authoritative: authoritative,
		pool:          pool,
		catalog:       catalog,
		opts:          opts,
	}
}

// Resolve runs the full cascade for one query.
func (r *Resolver) Resolve(ctx context.Context, query model.ContactQuery) model.ResolvedContact {
	runID := uuid.NewString()
	trail := &model.ResolutionTrail{RunID: runID, Query: query}

	zap.L().Info("resolver: starting run",
		zap.String("run_id", runID),
		zap.String("person", query.PersonName),
		zap.String("company", query.CompanyName),
	)

	if contact, ok := r.lookupAuthoritative(ctx, query, runID); ok {
		return contact
	}

	winner, ok := r.runCascade(ctx, query, trail)

	contact := model.ResolvedContact{
		RunID:          runID,
		Confidence:     model.ConfidenceLow,
		Email:          guessEmail(query),
		SocialProfiles: socialProfiles(query),
	}
	if ok {
		normalized := winner.Normalized
		srcName := winner.Source.Name
		score := winner.ValidationScore
		contact.Phone = &normalized
		contact.Source = &srcName
		contact.ValidationScore = &score
		contact.Confidence = model.ConfidenceForScore(winner.TotalScore())
	}

	zap.L().Info("resolver: run complete",
		zap.String("run_id", runID),
		zap.Bool("phone_found", ok),
		zap.String("confidence", string(contact.Confidence)),
		zap.Int("sources_tried", len(trail.Attempts)),
	)

	return contact
}

// lookupAuthoritative asks the paid service first. Unavailability, rate
// limiting, and "not found" are all the same miss; only a phone-bearing
// record short-circuits the cascade.
func (r *Resolver) lookupAuthoritative(ctx context.Context, query model.ContactQuery, runID string) (model.ResolvedContact, bool) {
	if r.authoritative == nil {
		return model.ResolvedContact{}, false
	}

	person, err := r.authoritative.LookupPerson(ctx, query.PersonName, query.CompanyName)
	if err != nil {
		zap.L().Warn("resolver: authoritative lookup failed, falling back",
			zap.String("run_id", runID),
			zap.Error(err),
		)
		return model.ResolvedContact{}, false
	}
	if person == nil || len(person.Phones) == 0 {
		return model.ResolvedContact{}, false
	}

	rawPhone := person.Phones[0]
	formatted := phone.FormatE164(rawPhone)
	if formatted == "" {
		formatted = phone.Normalize(rawPhone)
	}

	srcName := authoritativeSource
	score := 1.0
	contact := model.ResolvedContact{
		RunID:           runID,
		Phone:           &formatted,
		Confidence:      model.ConfidenceHigh,
		Source:          &srcName,
		ValidationScore: &score,
		Email:           person.Email,
		Position:        person.Title,
		SocialProfiles:  socialProfiles(query),
	}
	if contact.Email == "" {
		contact.Email = guessEmail(query)
	}
	if person.LinkedInURL != "" {
		contact.SocialProfiles["linkedin"] = person.LinkedInURL
	}
	if person.TwitterURL != "" {
		contact.SocialProfiles["twitter"] = person.TwitterURL
	}

	zap.L().Info("resolver: authoritative hit",
		zap.String("run_id", runID),
	)
	return contact, true
}

// runCascade walks the fallback tiers, streaming each settled source into
// extraction, validation, and the aggregator. Under the stop-early policy
// the tier context is cancelled as soon as the tier holds a valid
// candidate, cutting short in-flight fetches.
func (r *Resolver) runCascade(ctx context.Context, query model.ContactQuery, trail *model.ResolutionTrail) (model.PhoneCandidate, bool) {
	agg := aggregate.New()

	for _, tier := range r.catalog.Tiers {
		tierCtx, cancel := context.WithCancel(ctx)

		var mu sync.Mutex
		r.pool.FetchTierFunc(tierCtx, query, tier.Sources, func(res model.RawSourceResult) {
			attempt := harvest(res, agg)
			mu.Lock()
			trail.Record(attempt)
			mu.Unlock()

			if !r.opts.ScanAllTiers && agg.HasWinner() {
				cancel()
			}
		})
		cancel()

		if !r.opts.ScanAllTiers && agg.HasWinner() {
			break
		}
	}

	return agg.Winner()
}

// harvest extracts and scores candidates from one source's text, feeding
// the aggregator. A panic while processing one source's text is contained
// here and yields an empty attempt.
func harvest(res model.RawSourceResult, agg *aggregate.Best) (attempt model.SourceAttempt) {
	attempt = model.SourceAttempt{
		Source:   res.Source.Name,
		Tier:     res.Source.Tier,
		FetchErr: res.FetchErr,
	}

	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("resolver: panic while processing source text",
				zap.String("source", res.Source.Name),
				zap.Any("panic", r),
			)
			attempt.Candidates = 0
			attempt.BestScore = 0
		}
	}()

	if !res.OK() {
		return attempt
	}

	for _, raw := range phone.Extract(res.Text) {
		valid, score := phone.Validate(raw)
		candidate := model.PhoneCandidate{
			RawMatch:        raw,
			Normalized:      phone.Normalize(raw),
			ValidationScore: score,
			IsValid:         valid,
			Source:          res.Source,
		}
		agg.Offer(candidate)

		attempt.Candidates++
		if valid && candidate.TotalScore() > attempt.BestScore {
			attempt.BestScore = candidate.TotalScore()
		}
	}
	return attempt
}
