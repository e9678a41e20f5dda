package catalog

import (
	"testing"

	"labtrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogRepo struct {
	tests map[string]models.LabTest
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{tests: make(map[string]models.LabTest)}
}

func (r *fakeCatalogRepo) Create(test *models.LabTest) error {
	r.tests[test.ID] = *test
	return nil
}

func (r *fakeCatalogRepo) Update(test *models.LabTest) error {
	r.tests[test.ID] = *test
	return nil
}

func (r *fakeCatalogRepo) Delete(id string) error {
	delete(r.tests, id)
	return nil
}

func (r *fakeCatalogRepo) GetByID(id string) (*models.LabTest, error) {
	t, ok := r.tests[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *fakeCatalogRepo) GetAll() ([]models.LabTest, error) {
	var out []models.LabTest
	for _, t := range r.tests {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeCatalogRepo) GetActive() ([]models.LabTest, error) {
	var out []models.LabTest
	for _, t := range r.tests {
		if t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeCatalogRepo) GetActiveByIDs(ids []string) ([]models.LabTest, error) {
	var out []models.LabTest
	for _, id := range ids {
		if t, ok := r.tests[id]; ok && t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func boolPtr(b bool) *bool      { return &b }
func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestAddTestDefaultsToActive(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeCatalogRepo()}

	created, err := svc.AddTest(TestInput{
		Name:           "  Complete Blood Count ",
		Price:          100,
		SampleType:     "Blood",
		TurnaroundTime: "24 hours",
	})
	require.NoError(t, err)
	assert.Equal(t, "Complete Blood Count", created.Name)
	assert.True(t, created.IsActive)
	assert.NotEmpty(t, created.ID)
}

func TestAddTestValidation(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeCatalogRepo()}

	_, err := svc.AddTest(TestInput{Name: "X", Price: 1, SampleType: "", TurnaroundTime: "24 hours"})
	assert.Error(t, err)

	_, err = svc.AddTest(TestInput{Name: "X", Price: -5, SampleType: "Blood", TurnaroundTime: "24 hours"})
	assert.Error(t, err)
}

func TestUpdateTestAppliesPartialFields(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeCatalogRepo()}
	created, err := svc.AddTest(TestInput{Name: "Lipid Profile", Price: 250, SampleType: "Blood", TurnaroundTime: "48 hours"})
	require.NoError(t, err)

	updated, err := svc.UpdateTest(created.ID, TestUpdate{Price: f64Ptr(300), IsActive: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, 300.0, updated.Price)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "Lipid Profile", updated.Name)

	_, err = svc.UpdateTest("missing", TestUpdate{Name: strPtr("X")})
	assert.ErrorIs(t, err, ErrTestNotFound)
}

func TestToggleTest(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeCatalogRepo()}
	created, err := svc.AddTest(TestInput{Name: "HbA1c", Price: 120, SampleType: "Blood", TurnaroundTime: "24 hours"})
	require.NoError(t, err)

	toggled, err := svc.ToggleTest(created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = svc.ToggleTest(created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)

	_, err = svc.ToggleTest("missing")
	assert.ErrorIs(t, err, ErrTestNotFound)
}

func TestRemoveTest(t *testing.T) {
	repo := newFakeCatalogRepo()
	svc := &DefaultCatalogService{Repo: repo}
	created, err := svc.AddTest(TestInput{Name: "TSH", Price: 90, SampleType: "Blood", TurnaroundTime: "24 hours"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveTest(created.ID))
	assert.ErrorIs(t, svc.RemoveTest(created.ID), ErrTestNotFound)
}
