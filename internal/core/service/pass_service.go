package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/theyard/fanpass/internal/core/domain"
	"github.com/theyard/fanpass/internal/core/ports"
	"github.com/theyard/fanpass/internal/render"
)

type PassService struct {
	repo   ports.PassRepository
	logger zerolog.Logger
}

func NewPassService(repo ports.PassRepository, logger zerolog.Logger) *PassService {
	return &PassService{repo: repo, logger: logger}
}

// Create validates the form input, renders the card, and stores the pass
// under the device's anonymous id. An existing pass for the same id is
// overwritten; regeneration replaces, never appends.
func (s *PassService) Create(ctx context.Context, in ports.CreatePassInput) (*domain.Pass, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	category, err := domain.CategoryFromGender(in.Gender)
	if err != nil {
		return nil, fmt.Errorf("%w: gender must be male or female", domain.ErrInvalidPass)
	}

	// Walk the flow machine explicitly so the lifecycle stays visible in
	// logs: locked → generating → unlocked (or back to locked on failure).
	state, err := domain.FlowLocked.Apply(domain.EventSubmit)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	pass := &domain.Pass{
		ID:         generatePassID(now),
		AnonID:     in.AnonID,
		Name:       strings.TrimSpace(in.Name),
		Email:      strings.TrimSpace(in.Email),
		Phone:      strings.TrimSpace(in.Phone),
		Category:   category,
		YearJoined: now.Year(),
		CreatedAt:  now,
		Photo:      in.Photo,
		IP:         in.IP,
		UserAgent:  in.UserAgent,
	}

	// A client-rendered card is stored verbatim; otherwise the server is
	// the rendering authority. Either way the image is produced exactly
	// once and never regenerated from the record.
	if in.ExportedPNG != nil {
		pass.ExportedImage = in.ExportedPNG
	} else {
		exported, err := render.CardPNG(cardData(pass), false)
		if err != nil {
			return nil, fmt.Errorf("render card: %w", err)
		}
		pass.ExportedImage = exported
	}

	if err := s.repo.Save(ctx, pass); err != nil {
		state, _ = state.Apply(domain.EventSaveFailed)
		s.logger.Error().Err(err).Str("anon_id", in.AnonID).Str("state", string(state)).Msg("failed to save pass")
		return nil, err
	}
	state, _ = state.Apply(domain.EventSaved)

	s.logger.Info().
		Str("pass_id", pass.ID).
		Str("category", string(pass.Category)).
		Str("state", string(state)).
		Msg("pass created")

	return pass, nil
}

// Get resolves the device's pass and flow state. A missing pass is not an
// error: the device is simply still locked.
func (s *PassService) Get(ctx context.Context, anonID string) (*ports.PassView, error) {
	state := domain.FlowLoading

	pass, err := s.repo.FindByAnonID(ctx, anonID)
	if err != nil {
		if err == domain.ErrPassNotFound {
			state, _ = state.Apply(domain.EventNoPass)
			return &ports.PassView{State: state}, nil
		}
		return nil, err
	}

	state, _ = state.Apply(domain.EventPassFound)
	return &ports.PassView{Pass: pass, State: state}, nil
}

// List returns all passes newest-first for the admin panel.
func (s *PassService) List(ctx context.Context) ([]*domain.Pass, error) {
	passes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(passes, func(i, j int) bool {
		return passes[i].CreatedAt.After(passes[j].CreatedAt)
	})
	return passes, nil
}

func validateInput(in ports.CreatePassInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidPass)
	}
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", domain.ErrInvalidPass)
	}
	if strings.TrimSpace(in.Phone) == "" {
		return fmt.Errorf("%w: phone is required", domain.ErrInvalidPass)
	}
	if in.AnonID == "" {
		return fmt.Errorf("%w: missing device id", domain.ErrInvalidPass)
	}
	return nil
}

func cardData(p *domain.Pass) render.CardData {
	return render.CardData{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Phone:      p.Phone,
		TitleLines: p.Category.TitleLines(),
		Status:     p.Category.StatusLabel(),
		YearJoined: p.YearJoined,
		CreatedAt:  p.CreatedAt,
		Photo:      p.Photo,
	}
}

// generatePassID returns a unique pass id in the format YARD-YY-XXXXXXXXXXXX,
// with 96 bits of randomness in the hex suffix.
func generatePassID(now time.Time) string {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		// fallback: derive the suffix from the clock
		return fmt.Sprintf("YARD-%02d-%012X", now.Year()%100, now.UnixNano()&0xFFFFFFFFFFFF)
	}
	return fmt.Sprintf("YARD-%02d-%012X", now.Year()%100, b)
}
