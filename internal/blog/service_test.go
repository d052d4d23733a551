// AngelaMos | 2026
// service_test.go

package blog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/agrovia-exports/go-backend/internal/core"
)

type fakeRepo struct {
	posts map[string]*BlogPost
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{posts: make(map[string]*BlogPost)}
}

func (f *fakeRepo) List(ctx context.Context) ([]BlogPost, error) {
	out := make([]BlogPost, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*BlogPost, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, fmt.Errorf("get blog post: %w", core.ErrNotFound)
	}
	copied := *p
	return &copied, nil
}

func (f *fakeRepo) Create(ctx context.Context, p *BlogPost) error {
	p.ID = primitive.NewObjectID()
	f.posts[p.ID.Hex()] = p
	return nil
}

func (f *fakeRepo) Update(
	ctx context.Context,
	id string,
	fields bson.M,
) (*BlogPost, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, fmt.Errorf("update blog post: %w", core.ErrNotFound)
	}
	return p, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return fmt.Errorf("delete blog post: %w", core.ErrNotFound)
	}
	delete(f.posts, id)
	return nil
}

type spyAssetDeleter struct {
	paths []string
}

func (s *spyAssetDeleter) Delete(path string) (bool, error) {
	s.paths = append(s.paths, path)
	return true, nil
}

func TestService_CreateAppliesDefaults(t *testing.T) {
	svc := NewService(newFakeRepo(), &spyAssetDeleter{}, nil)

	post, err := svc.Create(context.Background(), CreateBlogPostRequest{
		Title:    "Monsoon and the rice harvest",
		Excerpt:  "What the rains mean for this season.",
		Content:  "Long form content.",
		ReadTime: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, "Agrovia Exports", post.Author)
	assert.Equal(t, time.Now().Format("January 2, 2006"), post.Date)
}

func TestService_CreateKeepsExplicitAuthorAndDate(t *testing.T) {
	svc := NewService(newFakeRepo(), &spyAssetDeleter{}, nil)

	post, err := svc.Create(context.Background(), CreateBlogPostRequest{
		Title:    "Spice market notes",
		Excerpt:  "Quarterly review.",
		Content:  "Content.",
		Author:   "Field Desk",
		Date:     "March 1, 2026",
		ReadTime: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, "Field Desk", post.Author)
	assert.Equal(t, "March 1, 2026", post.Date)
}

func TestService_DeleteCascadesToImage(t *testing.T) {
	repo := newFakeRepo()
	spy := &spyAssetDeleter{}
	svc := NewService(repo, spy, nil)

	post, err := svc.Create(context.Background(), CreateBlogPostRequest{
		Title:    "Wheat logistics",
		Excerpt:  "Port throughput.",
		Content:  "Content.",
		ReadTime: 3,
		Image:    "/uploads/wheat.jpg",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), post.ID.Hex()))

	assert.Empty(t, repo.posts)
	assert.Equal(t, []string{"/uploads/wheat.jpg"}, spy.paths)
}
