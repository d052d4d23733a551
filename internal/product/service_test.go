// AngelaMos | 2026
// service_test.go

package product

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/agrovia-exports/go-backend/internal/core"
)

type fakeRepo struct {
	products map[string]*Product

	deleted    []string
	lastUpdate bson.M
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: make(map[string]*Product)}
}

func (f *fakeRepo) List(ctx context.Context) ([]Product, error) {
	out := make([]Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("get product: %w", core.ErrNotFound)
	}
	copied := *p
	return &copied, nil
}

func (f *fakeRepo) Create(ctx context.Context, p *Product) error {
	p.ID = primitive.NewObjectID()
	f.products[p.ID.Hex()] = p
	return nil
}

func (f *fakeRepo) Update(
	ctx context.Context,
	id string,
	fields bson.M,
) (*Product, error) {
	f.lastUpdate = fields

	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("update product: %w", core.ErrNotFound)
	}
	return p, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return fmt.Errorf("delete product: %w", core.ErrNotFound)
	}
	delete(f.products, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type spyAssetDeleter struct {
	paths []string
	err   error
}

func (s *spyAssetDeleter) Delete(path string) (bool, error) {
	s.paths = append(s.paths, path)
	if s.err != nil {
		return false, s.err
	}
	return true, nil
}

func TestService_CreateAndGet(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &spyAssetDeleter{}, nil)

	created, err := svc.Create(context.Background(), CreateProductRequest{
		Name:           "Basmati Rice",
		Category:       CategoryRice,
		Description:    "Long grain aromatic rice",
		Specifications: "25kg bags, grade A",
		Image:          "/uploads/rice.jpg",
	})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	got, err := svc.Get(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Basmati Rice", got.Name)
	assert.Equal(t, CategoryRice, got.Category)
	assert.Equal(t, "/uploads/rice.jpg", got.Image)
}

func TestService_UpdateOnlySetsProvidedFields(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &spyAssetDeleter{}, nil)

	created, err := svc.Create(context.Background(), CreateProductRequest{
		Name:           "Turmeric",
		Category:       CategorySpices,
		Description:    "Ground turmeric",
		Specifications: "5kg pouches",
	})
	require.NoError(t, err)

	name := "Turmeric Powder"
	_, err = svc.Update(context.Background(), created.ID.Hex(),
		UpdateProductRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, bson.M{"name": "Turmeric Powder"}, repo.lastUpdate)
}

func TestService_DeleteCascadesToImage(t *testing.T) {
	repo := newFakeRepo()
	spy := &spyAssetDeleter{}
	svc := NewService(repo, spy, nil)

	created, err := svc.Create(context.Background(), CreateProductRequest{
		Name:           "Chickpeas",
		Category:       CategoryPulses,
		Description:    "Kabuli chickpeas",
		Specifications: "50kg sacks",
		Image:          "/uploads/chickpeas.png",
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, []string{created.ID.Hex()}, repo.deleted)
	assert.Equal(t, []string{"/uploads/chickpeas.png"}, spy.paths)
}

func TestService_DeleteWithoutImageSkipsAssets(t *testing.T) {
	repo := newFakeRepo()
	spy := &spyAssetDeleter{}
	svc := NewService(repo, spy, nil)

	created, err := svc.Create(context.Background(), CreateProductRequest{
		Name:           "Durum Wheat",
		Category:       CategoryWheat,
		Description:    "Hard wheat",
		Specifications: "Bulk",
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID.Hex())
	require.NoError(t, err)

	assert.Empty(t, spy.paths)
}

func TestService_DeleteSurvivesAssetFailure(t *testing.T) {
	repo := newFakeRepo()
	spy := &spyAssetDeleter{err: errors.New("disk on fire")}
	svc := NewService(repo, spy, nil)

	created, err := svc.Create(context.Background(), CreateProductRequest{
		Name:           "Red Lentils",
		Category:       CategoryPulses,
		Description:    "Split red lentils",
		Specifications: "25kg bags",
		Image:          "/uploads/lentils.jpg",
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID.Hex())
	require.NoError(t, err, "asset failure never fails the delete")

	assert.Equal(t, []string{"/uploads/lentils.jpg"}, spy.paths)
	assert.Empty(t, repo.products)
}

func TestService_DeleteNotFoundLeavesAssetsAlone(t *testing.T) {
	repo := newFakeRepo()
	spy := &spyAssetDeleter{}
	svc := NewService(repo, spy, nil)

	err := svc.Delete(
		context.Background(),
		primitive.NewObjectID().Hex(),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))
	assert.Empty(t, spy.paths)
}

func TestValidCategory(t *testing.T) {
	for _, category := range []string{
		CategoryRice, CategoryWheat, CategorySpices, CategoryPulses,
	} {
		assert.True(t, ValidCategory(category), category)
	}

	assert.False(t, ValidCategory("electronics"))
	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("Rice"))
}
