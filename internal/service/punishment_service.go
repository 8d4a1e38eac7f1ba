package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"tutordesk/internal/model"
	"tutordesk/internal/repository"
)

// PunishmentService runs the portal's punishment roulette: a weighted
// random draw over the configured wheel options, with every spin
// recorded per student.
type PunishmentService struct {
	punishmentRepo *repository.PunishmentRepository
	studentRepo    *repository.StudentRepository
	logger         *zap.Logger
	rng            *rand.Rand
}

func NewPunishmentService(
	punishmentRepo *repository.PunishmentRepository,
	studentRepo *repository.StudentRepository,
	logger *zap.Logger,
) *PunishmentService {
	return &PunishmentService{
		punishmentRepo: punishmentRepo,
		studentRepo:    studentRepo,
		logger:         logger,
		rng:            rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// TotalWeight sums the weights of the given options; zero or negative
// weights contribute nothing.
func TotalWeight(options []*model.PunishmentOption) int {
	total := 0
	for _, o := range options {
		if o.Weight > 0 {
			total += o.Weight
		}
	}
	return total
}

// PickWeighted maps a roll in [0, TotalWeight) onto an option. Exposed
// as a pure function so the draw itself is testable without a seed.
func PickWeighted(options []*model.PunishmentOption, roll int) *model.PunishmentOption {
	for _, o := range options {
		if o.Weight <= 0 {
			continue
		}
		if roll < o.Weight {
			return o
		}
		roll -= o.Weight
	}
	return nil
}

// Spin draws one punishment for the student and records it.
func (s *PunishmentService) Spin(ctx context.Context, studentID int64) (*model.PunishmentSpin, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	if student == nil {
		return nil, fmt.Errorf("student %d: %w", studentID, ErrNotFound)
	}

	options, err := s.punishmentRepo.GetActiveOptions(ctx)
	if err != nil {
		return nil, err
	}
	total := TotalWeight(options)
	if total == 0 {
		return nil, fmt.Errorf("%w: no punishment options configured", ErrValidation)
	}

	option := PickWeighted(options, s.rng.Intn(total))
	spin := &model.PunishmentSpin{
		StudentID: studentID,
		OptionID:  option.ID,
		Label:     option.Label,
		SpunAt:    time.Now(),
	}

	if err := s.punishmentRepo.CreateSpin(ctx, spin); err != nil {
		return nil, err
	}

	s.logger.Info("Punishment roulette spun",
		zap.Int64("student_id", studentID),
		zap.String("label", option.Label))

	return spin, nil
}

func (s *PunishmentService) History(ctx context.Context, studentID int64) ([]*model.PunishmentSpin, error) {
	return s.punishmentRepo.GetSpinsByStudent(ctx, studentID)
}

func (s *PunishmentService) Options(ctx context.Context) ([]*model.PunishmentOption, error) {
	return s.punishmentRepo.GetActiveOptions(ctx)
}

func (s *PunishmentService) CreateOption(ctx context.Context, option *model.PunishmentOption) error {
	if option.Label == "" {
		return fmt.Errorf("%w: label is required", ErrValidation)
	}
	if option.Weight <= 0 {
		return fmt.Errorf("%w: weight must be positive", ErrValidation)
	}
	return s.punishmentRepo.CreateOption(ctx, option)
}

func (s *PunishmentService) UpdateOption(ctx context.Context, option *model.PunishmentOption) error {
	existing, err := s.punishmentRepo.GetOptionByID(ctx, option.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("punishment option %d: %w", option.ID, ErrNotFound)
	}
	return s.punishmentRepo.UpdateOption(ctx, option)
}

func (s *PunishmentService) DeleteOption(ctx context.Context, id int64) error {
	existing, err := s.punishmentRepo.GetOptionByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("punishment option %d: %w", id, ErrNotFound)
	}
	return s.punishmentRepo.DeleteOption(ctx, id)
}
