package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"luchik.app/trainers/internal/domain"
	"luchik.app/trainers/internal/generator"
	"luchik.app/trainers/internal/hint"
	"luchik.app/trainers/internal/ports"
	"luchik.app/trainers/internal/random"
	"luchik.app/trainers/internal/ranges"
	"luchik.app/trainers/internal/schulte"
	"luchik.app/trainers/internal/stroop"
	"luchik.app/trainers/internal/telemetry"
)

// Service assembles drill sessions from the generators.
type Service struct {
	Ranges    ports.RangeResolver
	Beads     ports.Generator
	TargetSum ports.Generator
	Columns   ports.ColumnMapper
	Hinter    ports.Hinter

	Logger *zap.Logger
	Tracer trace.Tracer
	// NewSource builds the per-request randomness from a seed.
	NewSource func(seed int64) random.Source
}

func NewService(r ports.RangeResolver, beads, targetSum ports.Generator, cols ports.ColumnMapper, h ports.Hinter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		Ranges:    r,
		Beads:     beads,
		TargetSum: targetSum,
		Columns:   cols,
		Hinter:    h,
		Logger:    logger,
		Tracer:    otel.Tracer(telemetry.TracerName),
		NewSource: random.New,
	}
}

// QuickMath builds a quick-math session: a signed sequence to add up.
func (u *Service) QuickMath(ctx context.Context, req domain.SessionRequest) (*domain.Session, ports.Stats, error) {
	ctx, span := u.start(ctx, "usecase.QuickMath")
	defer span.End()

	seq, settings, seed, st, err := u.sequence(ctx, req)
	if err != nil {
		return nil, st, err
	}
	nums := make([]domain.NumberItem, len(seq.Numbers))
	for i, v := range seq.Numbers {
		nums[i] = domain.NumberItem{Index: i + 1, Value: v}
	}
	s := &domain.Session{
		ID:       uuid.NewString(),
		Seed:     seed,
		Settings: settings,
		Numbers:  nums,
		Total:    seq.Total,
	}
	span.SetAttributes(attribute.String("session.id", s.ID))
	return s, st, nil
}

// FlashCards builds an abacus flash-card session. Each card shows the
// magnitude of its value on abacus columns.
func (u *Service) FlashCards(ctx context.Context, req domain.SessionRequest) (*domain.FlashSession, ports.Stats, error) {
	ctx, span := u.start(ctx, "usecase.FlashCards")
	defer span.End()

	if u.Columns == nil {
		return nil, ports.Stats{}, domain.ErrNotConfigured
	}
	seq, settings, seed, st, err := u.sequence(ctx, req)
	if err != nil {
		return nil, st, err
	}
	cards := make([]domain.Card, len(seq.Numbers))
	for i, v := range seq.Numbers {
		mag := v
		if mag < 0 {
			mag = -mag
		}
		cols, err := u.Columns.NumberToColumns(mag)
		if err != nil {
			return nil, st, fmt.Errorf("map card %d: %w", i+1, err)
		}
		cards[i] = domain.Card{Index: i + 1, Value: v, Columns: cols}
	}
	s := &domain.FlashSession{
		ID:       uuid.NewString(),
		Seed:     seed,
		Settings: settings,
		Cards:    cards,
		Numbers:  seq.Numbers,
		Total:    seq.Total,
		Speed:    settings.Speed,
	}
	span.SetAttributes(attribute.String("session.id", s.ID))
	return s, st, nil
}

// Brothers builds a five-complement drill: every value ends in the chosen
// brother digit and comes with its bead-move decomposition.
func (u *Service) Brothers(ctx context.Context, req domain.BrothersRequest) (*domain.BrothersSession, error) {
	_, span := u.start(ctx, "usecase.Brothers")
	defer span.End()

	if u.Hinter == nil {
		return nil, domain.ErrNotConfigured
	}
	seed, err := u.seed(req.Seed)
	if err != nil {
		return nil, err
	}
	src := u.source(seed)
	tier := domain.Tier(ranges.Clamp(int(req.Tier), domain.MinTier, domain.MaxTier))
	brother := ranges.Clamp(req.Brother, domain.MinBrother, domain.MaxBrother)
	count := ranges.Clamp(req.Count, domain.MinCount, domain.MaxCount)

	s := &domain.BrothersSession{
		ID:        uuid.NewString(),
		Seed:      seed,
		Brother:   brother,
		Tier:      tier,
		Label:     tier.Label(),
		Speed:     req.Speed,
		Questions: make([]domain.BrothersQuestion, 0, count),
	}
	for i := 0; i < count; i++ {
		v := hint.Question(src, tier, brother)
		s.Questions = append(s.Questions, domain.BrothersQuestion{
			Index:       i + 1,
			Display:     hint.Display(v),
			BrotherStep: u.Hinter.Decompose(v, brother),
		})
		s.Total += v
	}
	span.SetAttributes(attribute.Int("brothers.brother", brother), attribute.Int("brothers.count", count))
	return s, nil
}

// Schulte builds a shuffled Schulte table.
func (u *Service) Schulte(ctx context.Context, seed int64, size int) (*domain.SchulteGrid, error) {
	_, span := u.start(ctx, "usecase.Schulte")
	defer span.End()

	seed, err := u.seed(seed)
	if err != nil {
		return nil, err
	}
	size = ranges.Clamp(size, domain.MinGridSize, domain.MaxGridSize)
	return &domain.SchulteGrid{
		Seed:    seed,
		Size:    size,
		Numbers: schulte.Grid(u.source(seed), size),
	}, nil
}

// Stroop builds a Stroop test at level.
func (u *Service) Stroop(ctx context.Context, seed int64, level domain.StroopLevel) (*domain.StroopSession, error) {
	_, span := u.start(ctx, "usecase.Stroop")
	defer span.End()

	seed, err := u.seed(seed)
	if err != nil {
		return nil, err
	}
	s := stroop.Session(u.source(seed), level)
	s.Seed = seed
	return &s, nil
}

// sequence resolves the range, routes to the bead or target-sum generator
// and clamps the reported total.
func (u *Service) sequence(ctx context.Context, req domain.SessionRequest) (domain.Sequence, domain.Settings, int64, ports.Stats, error) {
	if u.Ranges == nil || u.Beads == nil || u.TargetSum == nil {
		return domain.Sequence{}, domain.Settings{}, 0, ports.Stats{}, domain.ErrNotConfigured
	}
	maxDigit := ranges.Clamp(req.MaxDigit, domain.MinMaxDigit, domain.MaxMaxDigit)
	count := ranges.Clamp(req.Count, domain.MinCount, domain.MaxCount)
	cfg, maxSum := u.Ranges.Resolve(req.Tier, maxDigit)

	seed, err := u.seed(req.Seed)
	if err != nil {
		return domain.Sequence{}, domain.Settings{}, 0, ports.Stats{}, err
	}

	gen, route := u.TargetSum, "target_sum"
	if generator.UsesBeads(cfg.Tier, maxDigit) {
		gen, route = u.Beads, "beads"
	}
	seq, st, err := gen.Generate(ctx, u.source(seed), domain.SequenceRequest{
		Range:    cfg,
		MaxSum:   maxSum,
		MaxDigit: maxDigit,
		Count:    count,
	})
	if err != nil {
		return domain.Sequence{}, domain.Settings{}, 0, st, fmt.Errorf("generate %s sequence: %w", route, err)
	}
	seq.Total = ranges.Clamp(seq.Total, 0, maxSum)

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Int("range.tier", int(cfg.Tier)),
		attribute.Int("range.max_digit", maxDigit),
		attribute.Int("sequence.count", count),
		attribute.String("sequence.route", route),
		attribute.Int("sequence.passes", st.Passes),
		attribute.Bool("sequence.fallback", st.Fallback),
	)
	fields := []zap.Field{
		zap.String("route", route),
		zap.Int("tier", int(cfg.Tier)),
		zap.Int("max_digit", maxDigit),
		zap.Int("count", count),
		zap.Int64("seed", seed),
		zap.Int("trials", st.Trials),
		zap.Int("passes", st.Passes),
		zap.Duration("dur", st.Duration),
	}
	if st.Fallback {
		u.logger().Warn("target-sum search exhausted, used fallback sequence", fields...)
	} else {
		u.logger().Debug("sequence generated", fields...)
	}

	return seq, domain.Settings{
		Tier:     cfg.Tier,
		Label:    cfg.Label,
		Count:    count,
		Speed:    req.Speed,
		MaxDigit: maxDigit,
		MaxSum:   maxSum,
	}, seed, st, nil
}

// seed returns requested, or a fresh seed when it is zero.
func (u *Service) seed(requested int64) (int64, error) {
	if requested != 0 {
		return requested, nil
	}
	return random.NewSeed()
}

func (u *Service) start(ctx context.Context, name string) (context.Context, trace.Span) {
	tracer := u.Tracer
	if tracer == nil {
		tracer = otel.Tracer(telemetry.TracerName)
	}
	return tracer.Start(ctx, name)
}

func (u *Service) source(seed int64) random.Source {
	if u.NewSource == nil {
		return random.New(seed)
	}
	return u.NewSource(seed)
}

func (u *Service) logger() *zap.Logger {
	if u.Logger == nil {
		return zap.NewNop()
	}
	return u.Logger
}
