package random

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RandomSuite struct {
	suite.Suite
}

func TestRandomSuite(t *testing.T) {
	suite.Run(t, new(RandomSuite))
}

func (s *RandomSuite) TestSeededIsReproducible() {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for range 20 {
		s.Equal(a.Intn(1000), b.Intn(1000))
	}
	s.Equal(a.String(12, "ABC"), b.String(12, "ABC"))
}

func (s *RandomSuite) TestIntnRange() {
	for _, r := range []Random{New(), NewSeeded(7)} {
		for range 100 {
			v := r.Intn(5)
			s.GreaterOrEqual(v, 0)
			s.Less(v, 5)
		}
		s.Equal(0, r.Intn(0))
		s.Equal(0, r.Intn(-3))
	}
}

func (s *RandomSuite) TestStringUsesAlphabet() {
	for _, r := range []Random{New(), NewSeeded(7)} {
		value := r.String(12, "XY")
		s.Len(value, 12)
		for _, c := range value {
			s.Contains("XY", string(c))
		}
		s.Equal("", r.String(0, "XY"))
		s.Equal("", r.String(5, ""))
	}
}
