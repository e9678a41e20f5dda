package catalogRepo

import "labtrack/models"

// CatalogRepository defines data access for the lab test catalog.
type CatalogRepository interface {
	// Create inserts a new catalog entry.
	Create(test *models.LabTest) error
	// Update modifies an existing catalog entry.
	Update(test *models.LabTest) error
	// Delete removes a catalog entry by its ID.
	Delete(id string) error
	// GetByID retrieves a catalog entry by its unique ID. Returns (nil, nil)
	// when the entry does not exist.
	GetByID(id string) (*models.LabTest, error)
	// GetAll retrieves every catalog entry, newest first.
	GetAll() ([]models.LabTest, error)
	// GetActive retrieves active entries sorted by name.
	GetActive() ([]models.LabTest, error)
	// GetActiveByIDs retrieves the active entries among the given IDs.
	GetActiveByIDs(ids []string) ([]models.LabTest, error)
}
