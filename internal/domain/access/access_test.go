package access

import (
	"sync"
	"testing"

	"github.com/corey/ridecheck/internal/domain/limits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanAccess_Scenarios(t *testing.T) {
	kids := NewAttraction("Kiddie Slide", &limits.Children)
	big := NewAttraction("Drop Tower", &limits.Adult)

	tests := []struct {
		name string
		a    *Attraction
		v    Visitor
		want bool
	}{
		{"child fits children slide", kids, NewVisitor("Ana", 10, 30, 100), true},
		{"age over children max", kids, NewVisitor("Ben", 15, 30, 100), false},
		{"weight over adult max", big, NewVisitor("Cy", 30, 200, 180), false},
		{"adult fits adult ride", big, NewVisitor("Di", 40, 80, 170), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccess(tt.a, tt.v))
			assert.Equal(t, tt.want, tt.a.CanAccess(tt.v))
		})
	}
}

func TestCanAccess_BoundsInclusive(t *testing.T) {
	a := NewAttraction("Kiddie Slide", &limits.Children)
	assert.True(t, CanAccess(a, NewVisitor("lo", 4, 20, 80)))
	assert.True(t, CanAccess(a, NewVisitor("hi", 14, 50, 120)))

	assert.False(t, CanAccess(a, NewVisitor("", 3, 20, 80)))
	assert.False(t, CanAccess(a, NewVisitor("", 4, 19, 80)))
	assert.False(t, CanAccess(a, NewVisitor("", 4, 20, 79)))
	assert.False(t, CanAccess(a, NewVisitor("", 15, 50, 120)))
	assert.False(t, CanAccess(a, NewVisitor("", 14, 51, 120)))
	assert.False(t, CanAccess(a, NewVisitor("", 14, 50, 121)))
}

func TestCanAccess_ExhaustiveAgainstRanges(t *testing.T) {
	p := &limits.Adult
	a := NewAttraction("Coaster", p)
	for age := 10; age <= 65; age += 5 {
		for weight := 40; weight <= 130; weight += 15 {
			for height := 110; height <= 230; height += 20 {
				want := p.Age().Contains(age) && p.Weight().Contains(weight) && p.Height().Contains(height)
				assert.Equal(t, want, CanAccess(a, NewVisitor("", age, weight, height)),
					"age=%d weight=%d height=%d", age, weight, height)
			}
		}
	}
}

func TestCanAccess_MissingDataIsFalse(t *testing.T) {
	v := NewVisitor("Ana", 10, 30, 100)

	assert.NotPanics(t, func() {
		assert.False(t, CanAccess(nil, v))
		assert.False(t, CanAccess(NewAttraction("no profile", nil), v))
		assert.False(t, CanAccess(NewAttraction("zero profile", &limits.Profile{}), v))
	})

	partial := limits.NewProfile("partial", limits.NewIntRange(0, 100), limits.IntRange{}, limits.NewIntRange(0, 300))
	assert.False(t, CanAccess(NewAttraction("partial", &partial), v))
}

func TestEvaluate_ListsEveryViolation(t *testing.T) {
	a := NewAttraction("Kiddie Slide", &limits.Children)
	vd := Evaluate(a, NewVisitor("Ed", 30, 90, 180))

	assert.False(t, vd.Allowed)
	assert.False(t, vd.Missing)
	require.Len(t, vd.Violations, 3)
	assert.Equal(t, limits.Age, vd.Violations[0].Measure)
	assert.Equal(t, 30, vd.Violations[0].Value)
	assert.Equal(t, limits.Children.Age(), vd.Violations[0].Range)
	assert.Equal(t, []string{
		"age 30 not in 4–14",
		"weight 90 not in 20–50",
		"height 180 not in 80–120",
	}, vd.Reasons())
}

func TestEvaluate_Missing(t *testing.T) {
	vd := Evaluate(nil, Visitor{})
	assert.True(t, vd.Missing)
	assert.False(t, vd.Allowed)
	assert.Equal(t, "denied: attraction has no profile", vd.String())
}

func TestEvaluate_UnsetRangeReason(t *testing.T) {
	var empty limits.Profile
	vd := Evaluate(NewAttraction("x", &empty), NewVisitor("", 1, 1, 1))
	require.Len(t, vd.Violations, 3)
	assert.Equal(t, "age: no range declared", vd.Violations[0].String())
}

func TestVerdict_StringAllowed(t *testing.T) {
	vd := Evaluate(NewAttraction("Drop Tower", &limits.Adult), NewVisitor("Di", 40, 80, 170))
	assert.Equal(t, "allowed", vd.String())
	assert.Empty(t, vd.Reasons())
}

func TestCanAccess_ConcurrentUse(t *testing.T) {
	a := NewAttraction("Drop Tower", &limits.Adult)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v := NewVisitor("", 14+i, 80, 170)
			assert.Equal(t, 14+i <= 60, CanAccess(a, v))
		}(i)
	}
	wg.Wait()
}

func TestVisitor_Measure(t *testing.T) {
	v := NewVisitor("Ana", 10, 30, 100)
	assert.Equal(t, 10, v.Measure(limits.Age))
	assert.Equal(t, 30, v.Measure(limits.Weight))
	assert.Equal(t, 100, v.Measure(limits.Height))
	assert.Equal(t, 0, v.Measure(limits.Measure(-1)))
}
