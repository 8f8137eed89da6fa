package storage_test

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/mi-raf/memo-blog/internal/models"
	"github.com/mi-raf/memo-blog/internal/storage"

	"github.com/stretchr/testify/suite"
)

type PostRepositoryMemoryTestSuite struct {
	suite.Suite
	r   storage.PostRepository
	ctx context.Context
}

func (suite *PostRepositoryMemoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.r = storage.NewInMemoryPostRepository()
}

func (s *PostRepositoryMemoryTestSuite) addFake(n int) []*models.PostDTO {
	var added []*models.PostDTO
	for i := 0; i < n; i++ {
		var f models.PostDTO
		s.Require().NoError(gofakeit.Struct(&f))
		id, err := s.r.Add(s.ctx, &f)
		s.Require().NoError(err)
		f.Id = id
		added = append(added, &f)
	}
	return added
}

func (s *PostRepositoryMemoryTestSuite) TestCreatePost() {
	// given
	var f models.PostDTO
	s.NoError(gofakeit.Struct(&f))

	// when
	id, err := s.r.Add(s.ctx, &f)

	// then
	s.NoError(err)
	s.Equal(int64(1), id)
	s.Equal(int64(1), f.Id)
}

func (s *PostRepositoryMemoryTestSuite) TestGetPost() {
	// given
	added := s.addFake(3)

	// when
	actual, err := s.r.Get(s.ctx, added[1].Id)

	// then
	s.NoError(err)
	s.Equal(*added[1], *actual)
}

func (s *PostRepositoryMemoryTestSuite) TestGetPostEmpty() {
	// when
	actual, err := s.r.Get(s.ctx, -1)

	// then
	s.NoError(err)
	s.Nil(actual)
}

func (s *PostRepositoryMemoryTestSuite) TestGetAllKeepsInsertionOrder() {
	// given
	expected := s.addFake(10)

	// when
	actual, err := s.r.GetAll(s.ctx, 0, 30)

	// then
	s.NoError(err)
	s.Equal(expected, actual)
}

func (s *PostRepositoryMemoryTestSuite) TestGetAllPagination() {
	// given
	expected := s.addFake(10)

	// when
	actual, err := s.r.GetAll(s.ctx, 5, 3)

	// then
	s.NoError(err)
	s.Equal(expected[5:8], actual)
}

func (s *PostRepositoryMemoryTestSuite) TestGetAllHugeLimit() {
	// given
	expected := s.addFake(4)

	// when
	actual, err := s.r.GetAll(s.ctx, 1, math.MaxInt)

	// then
	s.NoError(err)
	s.Equal(expected[1:], actual)
}

func (s *PostRepositoryMemoryTestSuite) TestGetAllNoLimit() {
	// given
	expected := s.addFake(4)

	// when
	actual, err := s.r.GetAll(s.ctx, 1, 0)

	// then
	s.NoError(err)
	s.Equal(expected[1:], actual)
}

func (s *PostRepositoryMemoryTestSuite) TestGetAllOffsetOutOfRange() {
	// given
	s.addFake(2)

	// when
	actual, err := s.r.GetAll(s.ctx, 10, 5)

	// then
	s.NoError(err)
	s.Len(actual, 0)
}

func (s *PostRepositoryMemoryTestSuite) TestReturnedPostsAreCopies() {
	// given
	s.addFake(1)
	got, err := s.r.GetAll(s.ctx, 0, 1)
	s.Require().NoError(err)

	// when
	got[0].Header = "changed"

	// then
	again, err := s.r.Get(s.ctx, 1)
	s.NoError(err)
	s.NotEqual("changed", again.Header)
}

func (s *PostRepositoryMemoryTestSuite) TestConcurrentAdd() {
	// given
	var wg sync.WaitGroup

	// when
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.r.Add(s.ctx, &models.PostDTO{Header: "head", Text: "text"})
			s.NoError(err)
		}()
	}
	wg.Wait()

	// then
	n, err := s.r.Count(s.ctx)
	s.NoError(err)
	s.Equal(50, n)
	all, err := s.r.GetAll(s.ctx, 0, 0)
	s.NoError(err)
	for i, p := range all {
		s.Equal(int64(i+1), p.Id)
	}
}

func (s *PostRepositoryMemoryTestSuite) TestCanceledContext() {
	// given
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	// when
	_, err := s.r.Add(ctx, &models.PostDTO{Header: "head", Text: "text"})

	// then
	s.ErrorIs(err, context.Canceled)
	n, err := s.r.Count(s.ctx)
	s.NoError(err)
	s.Zero(n)
}

func TestPostRepositoryMemoryTestSuite(t *testing.T) {
	suite.Run(t, new(PostRepositoryMemoryTestSuite))
}
