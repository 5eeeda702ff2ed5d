package categorical_test

import (
	"testing"

	"github.com/nfagan/categorical/categorical"
	"github.com/nfagan/categorical/lawcheck"
)

func populated() *categorical.Categorical {
	c := categorical.New()
	c.RequireCategory("x")
	c.RequireCategory("y")
	c.Resize(4)
	c.SetCategory("x", []string{"a", "b", "a", "c"})
	c.SetCategory("y", []string{"1", "1", "2", "2"})
	return c
}

func TestCategoricalLaws(t *testing.T) {
	specs := []lawcheck.Spec{
		lawcheck.AppendLeftIdentity(populated),
		lawcheck.AppendAssociativity(populated),
		lawcheck.RoundTripThroughNumericMatrix(populated),
		lawcheck.ProgenitorStableAcrossReads(populated),
		lawcheck.ProgenitorStableAfterNoOpPrune(populated),
		lawcheck.KeepEachIdempotent(populated, []string{"x"}),
	}
	for _, spec := range specs {
		t.Run(spec.Name, spec.Test)
	}
}
