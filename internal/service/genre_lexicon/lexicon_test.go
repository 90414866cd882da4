package genre_lexicon

import (
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type LexiconUnitSuite struct {
	suite.Suite
}

func (s *LexiconUnitSuite) TestName(t provider.T) {
	t.Run("Should resolve known provider ids", func(t provider.T) {
		assert.Equal(t, "Drama", Name(18))
		assert.Equal(t, "Sci-Fi", Name(878))
	})

	t.Run("Should mark unknown ids", func(t provider.T) {
		assert.Equal(t, "Unknown", Name(999999))
	})
}

func (s *LexiconUnitSuite) TestIDsByName(t provider.T) {
	t.Run("Should match case-insensitively", func(t provider.T) {
		assert.Equal(t, []int{35}, IDsByName("comedy"))
		assert.Equal(t, []int{878}, IDsByName("SCI-FI"))
	})

	t.Run("Should return nothing for unknown names", func(t provider.T) {
		assert.Empty(t, IDsByName("telenovela"))
	})
}

func (s *LexiconUnitSuite) TestJoinGenres(t provider.T) {
	t.Run("Should space-join known genres", func(t provider.T) {
		assert.Equal(t, "Drama Romance", JoinGenres([]int{18, 10749}))
	})

	t.Run("Should keep sci-fi as one token", func(t provider.T) {
		assert.Equal(t, "Sci-Fi Fantasy", JoinGenres([]int{878, 14}))
	})

	t.Run("Should skip unknown ids", func(t provider.T) {
		assert.Equal(t, "Comedy", JoinGenres([]int{999999, 35}))
	})

	t.Run("Should render no genres as an empty string", func(t provider.T) {
		assert.Equal(t, "", JoinGenres(nil))
	})
}

func TestLexiconUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(LexiconUnitSuite))
}
