package catalog

import (
	"fmt"
	"strings"
	"time"

	catalogRepo "labtrack/database/repository/catalog"
	"labtrack/models"

	"github.com/google/uuid"
)

// CatalogService defines business logic for the lab test catalog.
type CatalogService interface {
	// ListActive returns the bookable tests, sorted by name.
	ListActive() ([]models.LabTest, error)
	// ListAll returns every test including inactive ones, newest first.
	ListAll() ([]models.LabTest, error)
	// AddTest creates a new catalog entry.
	AddTest(input TestInput) (*models.LabTest, error)
	// UpdateTest applies the non-nil fields of input to an existing entry.
	UpdateTest(id string, input TestUpdate) (*models.LabTest, error)
	// RemoveTest hard-deletes a catalog entry.
	RemoveTest(id string) error
	// ToggleTest flips an entry between active and inactive.
	ToggleTest(id string) (*models.LabTest, error)
}

// TestInput carries the fields for a new catalog entry.
type TestInput struct {
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	SampleType     string  `json:"sampleType"`
	TurnaroundTime string  `json:"turnaroundTime"`
	IsActive       *bool   `json:"isActive"`
}

// TestUpdate carries a partial update; nil fields are left untouched.
type TestUpdate struct {
	Name           *string  `json:"name"`
	Price          *float64 `json:"price"`
	SampleType     *string  `json:"sampleType"`
	TurnaroundTime *string  `json:"turnaroundTime"`
	IsActive       *bool    `json:"isActive"`
}

// ErrTestNotFound is returned when a catalog entry does not exist.
var ErrTestNotFound = fmt.Errorf("test not found")

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}

func (s *DefaultCatalogService) ListActive() ([]models.LabTest, error) {
	return s.Repo.GetActive()
}

func (s *DefaultCatalogService) ListAll() ([]models.LabTest, error) {
	return s.Repo.GetAll()
}

// AddTest validates and persists a new catalog entry.
func (s *DefaultCatalogService) AddTest(input TestInput) (*models.LabTest, error) {
	name := strings.TrimSpace(input.Name)
	sampleType := strings.TrimSpace(input.SampleType)
	turnaround := strings.TrimSpace(input.TurnaroundTime)
	if name == "" || sampleType == "" || turnaround == "" {
		return nil, fmt.Errorf("name, price, sampleType, turnaroundTime are required")
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	test := &models.LabTest{
		ID:             uuid.New().String(),
		Name:           name,
		Price:          input.Price,
		SampleType:     sampleType,
		TurnaroundTime: turnaround,
		IsActive:       active,
	}
	if err := s.Repo.Create(test); err != nil {
		return nil, err
	}
	return test, nil
}

// UpdateTest applies the provided fields to an existing entry. Bookings made
// before the update keep their snapshotted name and price.
func (s *DefaultCatalogService) UpdateTest(id string, input TestUpdate) (*models.LabTest, error) {
	test, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}

	if input.Name != nil {
		test.Name = strings.TrimSpace(*input.Name)
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, fmt.Errorf("price must not be negative")
		}
		test.Price = *input.Price
	}
	if input.SampleType != nil {
		test.SampleType = strings.TrimSpace(*input.SampleType)
	}
	if input.TurnaroundTime != nil {
		test.TurnaroundTime = strings.TrimSpace(*input.TurnaroundTime)
	}
	if input.IsActive != nil {
		test.IsActive = *input.IsActive
	}
	test.UpdatedAt = time.Now()

	if err := s.Repo.Update(test); err != nil {
		return nil, err
	}
	return test, nil
}

// RemoveTest hard-deletes a catalog entry.
func (s *DefaultCatalogService) RemoveTest(id string) error {
	test, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if test == nil {
		return ErrTestNotFound
	}
	return s.Repo.Delete(id)
}

// ToggleTest flips an entry between active and inactive.
func (s *DefaultCatalogService) ToggleTest(id string) (*models.LabTest, error) {
	test, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, ErrTestNotFound
	}

	test.IsActive = !test.IsActive
	if err := s.Repo.Update(test); err != nil {
		return nil, err
	}
	return test, nil
}
